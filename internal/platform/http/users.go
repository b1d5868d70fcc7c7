package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/you-rent/api/pkg/model"
)

func (r *Router) getUser(c *gin.Context) {
	user, err := r.users.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (r *Router) updateUser(c *gin.Context) {
	id := c.Param("id")
	if id != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your profile"})
		return
	}

	var user model.User
	if err := c.BindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// The aggregate score belongs to the rating flow, not profile edits.
	if current, err := r.users.GetByID(c.Request.Context(), id); err == nil {
		user.Score = current.Score
	}

	if err := r.users.Set(c.Request.Context(), id, user); err != nil {
		respondError(c, err)
		return
	}
	user.ID = id
	c.JSON(http.StatusOK, user)
}

func (r *Router) listCriterias(c *gin.Context) {
	criterias, err := r.criterias.ByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": criterias, "total": len(criterias)})
}

func (r *Router) getCriteria(c *gin.Context) {
	criteria, err := r.criterias.Get(c.Request.Context(), c.Param("id"), c.Param("criteriaId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, criteria)
}

func (r *Router) addCriteria(c *gin.Context) {
	userID := c.Param("id")
	if userID != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your profile"})
		return
	}

	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	saved, err := r.criterias.Add(c.Request.Context(), userID, criteria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (r *Router) updateCriteria(c *gin.Context) {
	userID := c.Param("id")
	if userID != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your profile"})
		return
	}

	criteria, ok := bindCriteria(c)
	if !ok {
		return
	}
	if err := r.criterias.Update(c.Request.Context(), userID, c.Param("criteriaId"), criteria); err != nil {
		respondError(c, err)
		return
	}
	criteria.ID = c.Param("criteriaId")
	c.JSON(http.StatusOK, criteria)
}

func (r *Router) deleteCriteria(c *gin.Context) {
	userID := c.Param("id")
	if userID != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your profile"})
		return
	}

	if err := r.criterias.Delete(c.Request.Context(), userID, c.Param("criteriaId")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func bindCriteria(c *gin.Context) (model.SearchCriteria, bool) {
	var criteria model.SearchCriteria
	if err := c.BindJSON(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return model.SearchCriteria{}, false
	}
	if criteria.PriceMax < criteria.PriceMin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "priceMax must not be below priceMin"})
		return model.SearchCriteria{}, false
	}
	if criteria.Country == "" || criteria.City == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "country and city are required"})
		return model.SearchCriteria{}, false
	}
	return criteria, true
}
