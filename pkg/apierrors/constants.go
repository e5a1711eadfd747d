package apierrors

const (
	MsgAPIRunning    = "apiRunning"
	MsgAPIDown       = "apiDown"
	MsgRouteNotFound = "routeNotFound"

	MsgFailListProjects      = "failListProjects"
	MsgFailGetProject        = "failGetProject"
	MsgFailCreateProject     = "failCreateProject"
	MsgFailUpdateProject     = "failUpdateProject"
	MsgFailDeleteProject     = "failDeleteProject"
	MsgInvalidProjectID      = "invalidProjectID"
	MsgInvalidProjectPayload = "invalidProjectPayload"
	MsgProjectNotFound       = "projectNotFound"
	MsgProjectNameRequired   = "projectNameRequired"
	MsgProjectCreated        = "projectCreated"
	MsgProjectUpdated        = "projectUpdated"
	MsgProjectDeleted        = "projectDeleted"

	MsgFailListTasks        = "failListTasks"
	MsgFailGetTask          = "failGetTask"
	MsgFailCreateTask       = "failCreateTask"
	MsgFailUpdateTask       = "failUpdateTask"
	MsgFailDeleteTask       = "failDeleteTask"
	MsgInvalidTaskID        = "invalidTaskID"
	MsgInvalidTaskPayload   = "invalidTaskPayload"
	MsgTaskNotFound         = "taskNotFound"
	MsgTaskTitleRequired    = "taskTitleRequired"
	MsgTaskAssigneeRequired = "taskAssigneeRequired"
	MsgInvalidTaskStatus    = "invalidTaskStatus"
	MsgTaskCreated          = "taskCreated"
	MsgTaskUpdated          = "taskUpdated"
	MsgTaskDeleted          = "taskDeleted"

	MsgNoFieldsToUpdate    = "noFieldsToUpdate"
	MsgCommentTextRequired = "commentTextRequired"
	MsgCommentAdded        = "commentAdded"
	MsgFailAddComment      = "failAddComment"

	MsgFailListUsers = "failListUsers"
)
