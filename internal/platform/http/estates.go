package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/you-rent/api/internal/business/matching"
	"github.com/you-rent/api/pkg/model"
)

const estateSnapshotKey = "estates"

// listEstates serves the browse view: the active estate collection,
// optionally scored against one of the caller's saved criteria, then run
// through the filter engine. Filtering always starts from the unfiltered
// base snapshot, never from a previously narrowed result.
func (r *Router) listEstates(c *gin.Context) {
	ctx := c.Request.Context()

	base, err := r.activeEstates(c)
	if err != nil {
		respondError(c, err)
		return
	}

	matchingMode := false
	if criteriaID := c.Query("criteriaId"); criteriaID != "" {
		criteria, err := r.criterias.Get(ctx, session(c).UserID, criteriaID)
		if err != nil {
			respondError(c, err)
			return
		}
		base = matching.MatchingList(base, criteria)
		matchingMode = true
	}

	list := matching.Filter(base, c.Query("q"), parseFilterValues(c))
	if matchingMode {
		list = matching.SortByMatchingScore(list)
	}

	c.JSON(http.StatusOK, gin.H{
		"items": list,
		"total": len(list),
	})
}

// activeEstates returns the last-fetched unfiltered snapshot, loading a
// fresh one from Firestore when the cache is cold.
func (r *Router) activeEstates(c *gin.Context) ([]model.Estate, error) {
	var base []model.Estate
	if r.snapshots.Get(estateSnapshotKey, &base) {
		return base, nil
	}

	all, err := r.estates.FetchAll(c.Request.Context())
	if err != nil {
		return nil, err
	}
	base = make([]model.Estate, 0, len(all))
	for _, e := range all {
		if e.IsActive {
			base = append(base, e)
		}
	}
	if err := r.snapshots.Put(estateSnapshotKey, base); err != nil {
		r.log.Warn("snapshot estates", "err", err)
	}
	return base, nil
}

func parseFilterValues(c *gin.Context) model.FilterValues {
	minScore, _ := strconv.ParseFloat(c.Query("minScore"), 64)
	return model.FilterValues{
		MinScore:         minScore,
		Price:            rangeParam(c, "price"),
		Bedrooms:         rangeParam(c, "bedrooms"),
		Bathrooms:        rangeParam(c, "bathrooms"),
		HabitableSurface: rangeParam(c, "surface"),
		ConstructionYear: rangeParam(c, "year"),
		IncludeParking:   c.Query("includeParking") == "true",
		IncludeStorage:   c.Query("includeStorage") == "true",
		WithPictures:     c.Query("withPictures") == "true",
	}
}

func rangeParam(c *gin.Context, name string) *model.Range {
	var rng model.Range
	if v := c.Query(name + "Lower"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rng.Lower = &f
		}
	}
	if v := c.Query(name + "Upper"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			rng.Upper = &f
		}
	}
	if rng.Lower == nil && rng.Upper == nil {
		return nil
	}
	return &rng
}

func (r *Router) getEstate(c *gin.Context) {
	estate, err := r.estates.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, estate)
}

func (r *Router) listUserEstates(c *gin.Context) {
	estates, err := r.estates.ByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": estates, "total": len(estates)})
}

func (r *Router) addEstate(c *gin.Context) {
	var estate model.Estate
	if err := c.BindJSON(&estate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if estate.Name == "" || estate.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and a positive price are required"})
		return
	}

	estate.UserID = session(c).UserID
	estate.IsActive = true
	estate.Score = 0
	estate.MatchingScore = 0

	saved, err := r.estates.Add(c.Request.Context(), estate)
	if err != nil {
		respondError(c, err)
		return
	}
	r.snapshots.Invalidate(estateSnapshotKey)
	c.JSON(http.StatusCreated, saved)
}

func (r *Router) updateEstate(c *gin.Context) {
	id := c.Param("id")
	current, err := r.estates.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if current.UserID != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner"})
		return
	}

	var estate model.Estate
	if err := c.BindJSON(&estate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	// Ownership, activity and the aggregate score are not editable here.
	estate.UserID = current.UserID
	estate.IsActive = current.IsActive
	estate.Score = current.Score
	estate.MatchingScore = 0

	if err := r.estates.Update(c.Request.Context(), id, estate); err != nil {
		respondError(c, err)
		return
	}
	r.snapshots.Invalidate(estateSnapshotKey)
	estate.ID = id
	c.JSON(http.StatusOK, estate)
}

func (r *Router) deleteEstate(c *gin.Context) {
	id := c.Param("id")
	current, err := r.estates.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if current.UserID != session(c).UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not the owner"})
		return
	}

	if err := r.estates.Deactivate(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	r.snapshots.Invalidate(estateSnapshotKey)
	c.Status(http.StatusNoContent)
}

type pictureReq struct {
	URL string `json:"url"`
}

func (r *Router) addEstatePicture(c *gin.Context) {
	r.changeEstatePicture(c, r.estates.AddPicture)
}

func (r *Router) removeEstatePicture(c *gin.Context) {
	r.changeEstatePicture(c, r.estates.RemovePicture)
}

func (r *Router) changeEstatePicture(c *gin.Context, op func(ctx context.Context, id, url string) error) {
	var req pictureReq
	if err := c.BindJSON(&req); err != nil || req.URL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}
	if err := op(c.Request.Context(), c.Param("id"), req.URL); err != nil {
		respondError(c, err)
		return
	}
	r.snapshots.Invalidate(estateSnapshotKey)
	c.Status(http.StatusNoContent)
}
