package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you-rent/api/pkg/model"
)

func (r *Router) listRequests(c *gin.Context) {
	sess := session(c)

	var (
		requests []model.Request
		err      error
	)
	switch c.DefaultQuery("box", "received") {
	case "sent":
		requests, err = r.requests.BySender(c.Request.Context(), sess.UserID)
	case "received":
		requests, err = r.requests.ByReceiver(c.Request.Context(), sess.UserID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "box must be sent or received"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": requests, "total": len(requests)})
}

func (r *Router) addRequest(c *gin.Context) {
	var req model.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if req.EstateID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "estateId is required"})
		return
	}

	estate, err := r.estates.GetByID(c.Request.Context(), req.EstateID)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := session(c)
	req.EstateName = estate.Name
	req.SenderID = sess.UserID
	req.SenderPhoto = sess.PhotoURL
	req.ReceiverID = estate.UserID
	req.IsPending = true
	req.IsAccepted = false

	saved, err := r.requests.Add(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (r *Router) updateRequest(c *gin.Context) {
	id := c.Param("id")
	current, err := r.requests.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	sess := session(c)
	if current.ReceiverID != sess.UserID && current.SenderID != sess.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant"})
		return
	}

	var req model.Request
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// Participants and the estate binding are fixed at creation.
	req.EstateID = current.EstateID
	req.EstateName = current.EstateName
	req.SenderID = current.SenderID
	req.SenderName = current.SenderName
	req.SenderPhoto = current.SenderPhoto
	req.ReceiverID = current.ReceiverID

	if err := r.requests.Update(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	req.ID = id
	c.JSON(http.StatusOK, req)
}

func (r *Router) listMessages(c *gin.Context) {
	id := c.Param("id")
	if !r.requireParticipant(c, id) {
		return
	}
	messages, err := r.requests.Messages(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": messages, "total": len(messages)})
}

type addMessageReq struct {
	Text string `json:"text"`
}

func (r *Router) addMessage(c *gin.Context) {
	id := c.Param("id")
	if !r.requireParticipant(c, id) {
		return
	}

	var req addMessageReq
	if err := c.BindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	msg := model.RequestMessage{
		SendDate: nowISO(),
		SenderID: session(c).UserID,
		Status:   model.MessageSent,
		Text:     req.Text,
	}
	saved, err := r.requests.AddMessage(c.Request.Context(), id, msg)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (r *Router) requireParticipant(c *gin.Context, requestID string) bool {
	current, err := r.requests.Get(c.Request.Context(), requestID)
	if err != nil {
		respondError(c, err)
		return false
	}
	sess := session(c)
	if current.SenderID != sess.UserID && current.ReceiverID != sess.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not a participant"})
		return false
	}
	return true
}
