package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bitmark-inc/cityworks-api/analysis"
	"github.com/bitmark-inc/cityworks-api/schema"
)

const maxRouteTasks = 50

// lookupAssignee makes sure the assignee exists and is able to work on tasks
func (s *Server) lookupAssignee(c *gin.Context, hex string) (*primitive.ObjectID, bool) {
	id, ok := optionalObjectID(c, hex)
	if !ok || id == nil {
		return nil, ok
	}

	user, err := s.mongoStore.GetUser(c.Request.Context(), *id)
	if shouldInterupt(err, c) {
		return nil, false
	}
	if !user.Active || user.Role == schema.RoleCitizen {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return nil, false
	}

	return id, true
}

// canWorkOn tells whether the user may act on a task. Field workers are
// limited to the tasks assigned to them.
func canWorkOn(user *schema.User, task *schema.Task) bool {
	if user.Role != schema.RoleFieldWorker {
		return true
	}
	return task.AssignedTo != nil && *task.AssignedTo == user.ID
}

func (s *Server) createTask(c *gin.Context) {
	var req struct {
		Title            string           `json:"title" binding:"required,max=200"`
		Description      string           `json:"description" binding:"max=5000"`
		IssueID          string           `json:"issue_id"`
		AssignedTo       string           `json:"assigned_to"`
		Priority         schema.Priority  `json:"priority"`
		Location         *locationRequest `json:"location"`
		EstimatedMinutes int              `json:"estimated_minutes" binding:"omitempty,min=1,max=1440"`
		DueDate          *time.Time       `json:"due_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Priority == "" {
		req.Priority = schema.PriorityMedium
	}
	if !req.Priority.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	issueID, ok := optionalObjectID(c, req.IssueID)
	if !ok {
		return
	}

	var issue *schema.Issue
	if issueID != nil {
		var err error
		issue, err = s.mongoStore.GetIssue(c.Request.Context(), *issueID)
		if shouldInterupt(err, c) {
			return
		}
		if issue.TaskID != nil {
			abortWithEncoding(c, http.StatusConflict, errorIssueHasTask)
			return
		}
	}

	assignee, ok := s.lookupAssignee(c, req.AssignedTo)
	if !ok {
		return
	}

	task := &schema.Task{
		Title:            req.Title,
		Description:      req.Description,
		IssueID:          issueID,
		AssignedTo:       assignee,
		CreatedBy:        currentUser(c).ID,
		Priority:         req.Priority,
		EstimatedMinutes: req.EstimatedMinutes,
		DueDate:          req.DueDate,
	}
	if loc := req.Location.toLocation(); loc != nil {
		task.Location = schema.NewPoint(*loc)
	} else if issue != nil {
		task.Location = issue.Location
	}

	if err := s.mongoStore.CreateTask(c.Request.Context(), task); shouldInterupt(err, c) {
		return
	}

	if issue != nil && !s.linkIssueTask(c, task) {
		return
	}

	responseResult(c, http.StatusCreated, task)
}

// linkIssueTask links a newly created task back to its issue. The task is
// removed again if the issue cannot take it.
func (s *Server) linkIssueTask(c *gin.Context, task *schema.Task) bool {
	ctx := c.Request.Context()

	linkErr := s.mongoStore.LinkIssueTask(ctx, *task.IssueID, task.ID)
	if linkErr == nil {
		return true
	}

	if err := s.mongoStore.DeleteTask(ctx, task.ID); err != nil {
		log.WithError(err).WithField("task_id", task.ID.Hex()).
			Error("fail to remove a task which cannot be linked to its issue")
	}
	shouldInterupt(linkErr, c)
	return false
}

// unlinkIssueTask frees the issue of a deleted or cancelled task
func (s *Server) unlinkIssueTask(ctx context.Context, task *schema.Task) error {
	if task.IssueID == nil {
		return nil
	}
	return s.mongoStore.UnlinkIssueTask(ctx, *task.IssueID, task.ID)
}

func (s *Server) listTasks(c *gin.Context) {
	var params struct {
		pageQuery
		Status     schema.TaskStatus `form:"status"`
		Priority   schema.Priority   `form:"priority"`
		AssignedTo string            `form:"assigned_to"`
		IssueID    string            `form:"issue_id"`
		Mine       bool              `form:"mine"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if (params.Status != "" && !params.Status.Valid()) ||
		(params.Priority != "" && !params.Priority.Valid()) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	assignee, ok := optionalObjectID(c, params.AssignedTo)
	if !ok {
		return
	}
	issueID, ok := optionalObjectID(c, params.IssueID)
	if !ok {
		return
	}

	user := currentUser(c)
	if params.Mine || user.Role == schema.RoleFieldWorker {
		assignee = &user.ID
	}

	page := params.toPage()
	tasks, total, err := s.mongoStore.ListTasks(c.Request.Context(), schema.TaskFilter{
		Status:     params.Status,
		Priority:   params.Priority,
		AssignedTo: assignee,
		IssueID:    issueID,
		Page:       page,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseList(c, tasks, total, page)
}

// getTaskFor loads a task and checks the caller can work on it
func (s *Server) getTaskFor(c *gin.Context) (*schema.Task, bool) {
	id, ok := paramObjectID(c, "taskID")
	if !ok {
		return nil, false
	}

	task, err := s.mongoStore.GetTask(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return nil, false
	}
	if !canWorkOn(currentUser(c), task) {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return nil, false
	}

	return task, true
}

func (s *Server) getTask(c *gin.Context) {
	task, ok := s.getTaskFor(c)
	if !ok {
		return
	}

	responseResult(c, http.StatusOK, task)
}

func (s *Server) updateTask(c *gin.Context) {
	id, ok := paramObjectID(c, "taskID")
	if !ok {
		return
	}

	var req struct {
		Title            *string          `json:"title" binding:"omitempty,min=1,max=200"`
		Description      *string          `json:"description" binding:"omitempty,max=5000"`
		Priority         *schema.Priority `json:"priority"`
		AssignedTo       *string          `json:"assigned_to"`
		Location         *locationRequest `json:"location"`
		EstimatedMinutes *int             `json:"estimated_minutes" binding:"omitempty,min=1,max=1440"`
		DueDate          *time.Time       `json:"due_date"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Priority != nil && !req.Priority.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	update := schema.TaskUpdate{
		Title:            req.Title,
		Description:      req.Description,
		Priority:         req.Priority,
		Location:         req.Location.toLocation(),
		EstimatedMinutes: req.EstimatedMinutes,
		DueDate:          req.DueDate,
	}
	if req.AssignedTo != nil {
		assignee, ok := s.lookupAssignee(c, *req.AssignedTo)
		if !ok {
			return
		}
		if assignee == nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		update.AssignedTo = assignee
	}

	task, err := s.mongoStore.UpdateTask(c.Request.Context(), id, update)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, task)
}

func (s *Server) deleteTask(c *gin.Context) {
	id, ok := paramObjectID(c, "taskID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	task, err := s.mongoStore.GetTask(ctx, id)
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.DeleteTask(ctx, id); shouldInterupt(err, c) {
		return
	}

	if err := s.unlinkIssueTask(ctx, task); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, gin.H{"id": id})
}

// updateTaskStatus moves a task along its lifecycle. The update only applies
// if nobody changed the status in between.
func (s *Server) updateTaskStatus(c *gin.Context) {
	var req struct {
		Status schema.TaskStatus `json:"status" binding:"required"`
		Note   string            `json:"note" binding:"max=2000"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if !req.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	task, ok := s.getTaskFor(c)
	if !ok {
		return
	}
	if !task.Status.CanTransit(req.Status) {
		abortWithEncoding(c, http.StatusConflict, errorTaskTransition)
		return
	}

	ctx := c.Request.Context()
	task, err := s.mongoStore.TransitTaskStatus(ctx, task.ID, task.Status, req.Status)
	if shouldInterupt(err, c) {
		return
	}

	if req.Note != "" {
		task, err = s.mongoStore.AddTaskNote(ctx, task.ID, schema.TaskNote{
			Author: currentUser(c).ID,
			Text:   req.Note,
		})
		if shouldInterupt(err, c) {
			return
		}
	}

	if req.Status == schema.TaskCancelled {
		if err := s.unlinkIssueTask(ctx, task); err != nil {
			log.WithError(err).WithField("task_id", task.ID.Hex()).
				Error("fail to unlink a cancelled task from its issue")
		}
	} else if task.IssueID != nil {
		var status schema.IssueStatus
		switch req.Status {
		case schema.TaskInProgress:
			status = schema.IssueInProgress
		case schema.TaskCompleted:
			status = schema.IssueResolved
		}
		if status != "" {
			if _, err := s.mongoStore.UpdateIssue(ctx, *task.IssueID, schema.IssueUpdate{Status: &status}); err != nil {
				log.WithError(err).WithField("issue_id", task.IssueID.Hex()).
					Warn("fail to sync the issue status of a task")
			}
		}
	}

	responseResult(c, http.StatusOK, task)
}

func (s *Server) addTaskNote(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required,max=2000"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	task, ok := s.getTaskFor(c)
	if !ok {
		return
	}

	task, err := s.mongoStore.AddTaskNote(c.Request.Context(), task.ID, schema.TaskNote{
		Author: currentUser(c).ID,
		Text:   req.Text,
	})
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, task)
}

// optimizeRoute orders the given tasks, or the caller's open tasks, into a
// visiting route starting from the given location
func (s *Server) optimizeRoute(c *gin.Context) {
	var req struct {
		Start   *locationRequest `json:"start" binding:"required"`
		TaskIDs []string         `json:"task_ids" binding:"max=50"`
		StartAt *time.Time       `json:"start_at"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	ctx := c.Request.Context()
	user := currentUser(c)

	var tasks []schema.Task
	if len(req.TaskIDs) > 0 {
		ids, ok := objectIDs(c, req.TaskIDs)
		if !ok {
			return
		}

		found, err := s.mongoStore.GetTasksByIDs(ctx, ids)
		if shouldInterupt(err, c) {
			return
		}
		for i := range found {
			if found[i].Status.Final() {
				continue
			}
			if !canWorkOn(user, &found[i]) {
				abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
				return
			}
			tasks = append(tasks, found[i])
		}
	} else {
		open, err := s.mongoStore.ListOpenTasks(ctx, user.ID)
		if shouldInterupt(err, c) {
			return
		}
		tasks = open
	}

	if len(tasks) > maxRouteTasks {
		tasks = tasks[:maxRouteTasks]
	}

	startAt := time.Now().UTC()
	if req.StartAt != nil {
		startAt = *req.StartAt
	}

	responseResult(c, http.StatusOK, analysis.OptimizeRoute(*req.Start.toLocation(), startAt, tasks))
}
