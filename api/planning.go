package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitmark-inc/cityworks-api/live"
	"github.com/bitmark-inc/cityworks-api/schema"
)

// loadSession returns the session in the path if the caller is a member
func (s *Server) loadSession(c *gin.Context) (*schema.PlanningSession, bool) {
	id, ok := paramObjectID(c, "sessionID")
	if !ok {
		return nil, false
	}

	session, err := s.mongoStore.GetPlanningSession(c.Request.Context(), id)
	if shouldInterupt(err, c) {
		return nil, false
	}

	if !session.IsMember(currentUser(c).ID) {
		abortWithEncoding(c, http.StatusForbidden, errorNotSessionMember)
		return nil, false
	}

	return session, true
}

func (s *Server) loadOwnedSession(c *gin.Context) (*schema.PlanningSession, bool) {
	session, ok := s.loadSession(c)
	if !ok {
		return nil, false
	}

	if session.Owner != currentUser(c).ID {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return nil, false
	}

	return session, true
}

func (s *Server) broadcast(session *schema.PlanningSession, eventType string, payload interface{}) {
	n := s.hub.Broadcast(session.ID.Hex(), eventType, payload)
	log.WithField("session_id", session.ID.Hex()).WithField("event", eventType).
		Debugf("broadcast to %d clients", n)
}

func (s *Server) createSession(c *gin.Context) {
	var req struct {
		Title       string           `json:"title" binding:"required,max=200"`
		Description string           `json:"description" binding:"max=5000"`
		Center      *locationRequest `json:"center"`
		Zoom        int              `json:"zoom" binding:"min=0,max=22"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	session := &schema.PlanningSession{
		Title:       req.Title,
		Description: req.Description,
		Owner:       currentUser(c).ID,
		Center:      req.Center.toLocation(),
		Zoom:        req.Zoom,
	}
	if err := s.mongoStore.CreatePlanningSession(c.Request.Context(), session); shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusCreated, session)
}

func (s *Server) listSessions(c *gin.Context) {
	var params struct {
		Status schema.SessionStatus `form:"status"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if params.Status != "" && !params.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	sessions, err := s.mongoStore.ListPlanningSessions(c.Request.Context(), currentUser(c).ID, params.Status)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, sessions)
}

func (s *Server) getSession(c *gin.Context) {
	session, ok := s.loadSession(c)
	if !ok {
		return
	}

	responseResult(c, http.StatusOK, gin.H{
		"session":   session,
		"connected": s.hub.Count(session.ID.Hex()),
	})
}

func (s *Server) updateSession(c *gin.Context) {
	var req struct {
		Title       *string               `json:"title" binding:"omitempty,min=1,max=200"`
		Description *string               `json:"description" binding:"omitempty,max=5000"`
		Status      *schema.SessionStatus `json:"status"`
		Center      *locationRequest      `json:"center"`
		Zoom        *int                  `json:"zoom" binding:"omitempty,min=0,max=22"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if req.Status != nil && !req.Status.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	session, ok := s.loadOwnedSession(c)
	if !ok {
		return
	}

	session, err := s.mongoStore.UpdatePlanningSession(c.Request.Context(), session.ID, schema.PlanningSessionUpdate{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Center:      req.Center.toLocation(),
		Zoom:        req.Zoom,
	})
	if shouldInterupt(err, c) {
		return
	}

	s.broadcast(session, live.EventSessionUpdated, session)
	responseResult(c, http.StatusOK, session)
}

func (s *Server) deleteSession(c *gin.Context) {
	session, ok := s.loadOwnedSession(c)
	if !ok {
		return
	}

	if err := s.mongoStore.DeletePlanningSession(c.Request.Context(), session.ID); shouldInterupt(err, c) {
		return
	}

	s.broadcast(session, live.EventSessionDeleted, nil)
	s.hub.CloseSession(session.ID.Hex())
	responseResult(c, http.StatusOK, gin.H{"id": session.ID})
}

func (s *Server) joinSession(c *gin.Context) {
	id, ok := paramObjectID(c, "sessionID")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	session, err := s.mongoStore.GetPlanningSession(ctx, id)
	if shouldInterupt(err, c) {
		return
	}
	if session.Status == schema.SessionArchived {
		abortWithEncoding(c, http.StatusConflict, errorSessionArchived)
		return
	}

	user := currentUser(c)
	if session.IsMember(user.ID) {
		responseResult(c, http.StatusOK, session)
		return
	}

	session, err = s.mongoStore.AddSessionParticipant(ctx, id, user.ID)
	if shouldInterupt(err, c) {
		return
	}

	s.broadcast(session, live.EventParticipantJoined, gin.H{"user_id": user.ID, "name": user.Name})
	responseResult(c, http.StatusOK, session)
}

func (s *Server) leaveSession(c *gin.Context) {
	session, ok := s.loadSession(c)
	if !ok {
		return
	}

	user := currentUser(c)
	if session.Owner == user.ID {
		abortWithEncoding(c, http.StatusConflict, errorOwnerCannotLeave)
		return
	}

	session, err := s.mongoStore.RemoveSessionParticipant(c.Request.Context(), session.ID, user.ID)
	if shouldInterupt(err, c) {
		return
	}

	s.hub.Disconnect(session.ID.Hex(), user.ID.Hex())
	s.broadcast(session, live.EventParticipantLeft, gin.H{"user_id": user.ID, "name": user.Name})
	responseResult(c, http.StatusOK, session)
}

// sessionLive upgrades the request to a websocket receiving the session events
func (s *Server) sessionLive(c *gin.Context) {
	session, ok := s.loadSession(c)
	if !ok {
		return
	}

	if err := s.hub.Serve(c.Writer, c.Request, session.ID.Hex(), currentUser(c).ID.Hex()); err != nil {
		// the upgrader has answered the request already
		log.WithError(err).Warn("fail to upgrade the planning session connection")
	}
}

func (s *Server) listAnnotations(c *gin.Context) {
	session, ok := s.loadSession(c)
	if !ok {
		return
	}

	annotations, err := s.mongoStore.ListAnnotations(c.Request.Context(), session.ID)
	if shouldInterupt(err, c) {
		return
	}

	responseResult(c, http.StatusOK, annotations)
}

func toLocations(reqs []locationRequest) []schema.Location {
	points := make([]schema.Location, 0, len(reqs))
	for i := range reqs {
		points = append(points, *reqs[i].toLocation())
	}
	return points
}

func (s *Server) createAnnotation(c *gin.Context) {
	var req struct {
		Kind   schema.AnnotationKind `json:"kind" binding:"required"`
		Points []locationRequest     `json:"points" binding:"max=500,dive"`
		Text   string                `json:"text" binding:"max=2000"`
		Color  string                `json:"color" binding:"omitempty,hexcolor"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	if !req.Kind.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}
	if !req.Kind.AcceptsPoints(len(req.Points)) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAnnotation)
		return
	}

	session, ok := s.loadSession(c)
	if !ok {
		return
	}
	if session.Status == schema.SessionArchived {
		abortWithEncoding(c, http.StatusConflict, errorSessionArchived)
		return
	}

	annotation := &schema.PlanningAnnotation{
		SessionID: session.ID,
		Author:    currentUser(c).ID,
		Kind:      req.Kind,
		Points:    toLocations(req.Points),
		Text:      req.Text,
		Color:     req.Color,
	}
	if err := s.mongoStore.CreateAnnotation(c.Request.Context(), annotation); shouldInterupt(err, c) {
		return
	}

	s.broadcast(session, live.EventAnnotationCreated, annotation)
	responseResult(c, http.StatusCreated, annotation)
}

// loadEditableAnnotation returns the annotation in the path if the caller
// is its author or the session owner
func (s *Server) loadEditableAnnotation(c *gin.Context) (*schema.PlanningSession, *schema.PlanningAnnotation, bool) {
	session, ok := s.loadSession(c)
	if !ok {
		return nil, nil, false
	}
	if session.Status == schema.SessionArchived {
		abortWithEncoding(c, http.StatusConflict, errorSessionArchived)
		return nil, nil, false
	}

	id, ok := paramObjectID(c, "annotationID")
	if !ok {
		return nil, nil, false
	}

	annotation, err := s.mongoStore.GetAnnotation(c.Request.Context(), session.ID, id)
	if shouldInterupt(err, c) {
		return nil, nil, false
	}

	user := currentUser(c)
	if annotation.Author != user.ID && session.Owner != user.ID {
		abortWithEncoding(c, http.StatusForbidden, errorPermissionDenied)
		return nil, nil, false
	}

	return session, annotation, true
}

func (s *Server) updateAnnotation(c *gin.Context) {
	var req struct {
		Points *[]locationRequest `json:"points" binding:"omitempty,max=500,dive"`
		Text   *string            `json:"text" binding:"omitempty,max=2000"`
		Color  *string            `json:"color" binding:"omitempty,hexcolor"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	session, annotation, ok := s.loadEditableAnnotation(c)
	if !ok {
		return
	}

	update := schema.AnnotationUpdate{
		Text:  req.Text,
		Color: req.Color,
	}
	if req.Points != nil {
		if !annotation.Kind.AcceptsPoints(len(*req.Points)) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidAnnotation)
			return
		}
		points := toLocations(*req.Points)
		update.Points = &points
	}

	annotation, err := s.mongoStore.UpdateAnnotation(c.Request.Context(), session.ID, annotation.ID, update)
	if shouldInterupt(err, c) {
		return
	}

	s.broadcast(session, live.EventAnnotationUpdated, annotation)
	responseResult(c, http.StatusOK, annotation)
}

func (s *Server) deleteAnnotation(c *gin.Context) {
	session, annotation, ok := s.loadEditableAnnotation(c)
	if !ok {
		return
	}

	if err := s.mongoStore.DeleteAnnotation(c.Request.Context(), session.ID, annotation.ID); shouldInterupt(err, c) {
		return
	}

	s.broadcast(session, live.EventAnnotationDeleted, gin.H{"id": annotation.ID})
	responseResult(c, http.StatusOK, gin.H{"id": annotation.ID})
}
