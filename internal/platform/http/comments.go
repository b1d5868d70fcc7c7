package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you-rent/api/pkg/model"
)

func (r *Router) listComments(c *gin.Context) {
	ctx := c.Request.Context()
	estateID := c.Query("estateId")
	profileID := c.Query("profileId")

	var (
		comments []model.Comment
		err      error
	)
	switch {
	case estateID != "" && profileID == "":
		comments, err = r.comments.ByEstate(ctx, estateID)
	case profileID != "" && estateID == "":
		comments, err = r.comments.ByProfile(ctx, profileID)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "provide exactly one of estateId or profileId"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": comments, "total": len(comments)})
}

func (r *Router) addComment(c *gin.Context) {
	var comment model.Comment
	if err := c.BindJSON(&comment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	sess := session(c)
	comment.UserID = sess.UserID
	comment.CreateDateTime = nowISO()

	// The subject's owner comments without a score; ratings come from others.
	if comment.EstateID != "" {
		estate, err := r.estates.GetByID(c.Request.Context(), comment.EstateID)
		if err != nil {
			respondError(c, err)
			return
		}
		if estate.UserID == sess.UserID {
			comment.Score = 0
		}
	}
	if comment.ProfileID != "" && comment.ProfileID == sess.UserID {
		comment.Score = 0
	}

	saved, score, err := r.ratings.AddComment(c.Request.Context(), comment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r.snapshots.Invalidate(estateSnapshotKey)
	c.JSON(http.StatusCreated, gin.H{"comment": saved, "subjectScore": score})
}

type updateCommentReq struct {
	Message string `json:"message"`
}

func (r *Router) updateComment(c *gin.Context) {
	id := c.Param("id")
	current, err := r.comments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if current.UserID != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the author"})
		return
	}

	var req updateCommentReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := r.ratings.UpdateMessage(c.Request.Context(), id, req.Message); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (r *Router) deleteComment(c *gin.Context) {
	id := c.Param("id")
	current, err := r.comments.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if current.UserID != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the author"})
		return
	}

	score, err := r.ratings.DeleteComment(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	r.snapshots.Invalidate(estateSnapshotKey)
	c.JSON(http.StatusOK, gin.H{"subjectScore": score})
}
