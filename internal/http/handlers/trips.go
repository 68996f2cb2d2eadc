package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"motortransport/internal/domain/models"
	"motortransport/internal/http/middleware"
	"motortransport/internal/repositories"
	"motortransport/internal/services"
	"motortransport/internal/utils"

	"github.com/gin-gonic/gin"
)

func rosterService(c *gin.Context) services.RosterService {
	return services.RosterService{
		Trips:     repositories.TripRepository{},
		Session:   Session(),
		RequestID: middleware.GetRequestID(c),
	}
}

// tripFilterFromQuery reads ?status=, ?date_from=, ?date_to= (YYYY-MM-DD).
func tripFilterFromQuery(c *gin.Context) (models.TripFilter, bool) {
	f := models.TripFilter{Status: strings.TrimSpace(c.Query("status"))}

	if raw := strings.TrimSpace(c.Query("date_from")); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date_from", err)
			return f, false
		}
		f.DateFrom = &t
	}
	if raw := strings.TrimSpace(c.Query("date_to")); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "invalid date_to", err)
			return f, false
		}
		f.DateTo = &t
	}
	return f, true
}

// GET /api/trips — loads a fresh filtered snapshot into the editor session.
func GetTrips(c *gin.Context) {
	f, ok := tripFilterFromQuery(c)
	if !ok {
		return
	}

	snap, err := rosterService(c).Load(f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"trips": snap, "state": Session().State().String()})
}

// GET /api/trips/rows — the current working copy, without touching storage.
func GetSessionRows(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"trips": Session().Rows(),
		"state": Session().State().String(),
	})
}

// POST /api/trips — inserts a default trip from the first available
// reference rows and reloads the snapshot.
func AddTrip(c *gin.Context) {
	id, err := rosterService(c).AddDefault()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id, "trips": Session().Rows()})
}

// DELETE /api/trips/:id — removes the trip and its bookings atomically.
func DeleteTrip(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid trip id", err)
		return
	}

	if err := rosterService(c).Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "trips": Session().Rows()})
}

// POST /api/trips/edit
func BeginEdit(c *gin.Context) {
	if err := rosterService(c).BeginEdit(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"state": Session().State().String()})
}

type updateRowRequest struct {
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	Status        string    `json:"status"`
}

// PUT /api/trips/rows/:id — mutates one row of the working copy.
func UpdateSessionRow(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid trip id", err)
		return
	}

	var req updateRowRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	if err := rosterService(c).UpdateRow(id, req.DepartureTime, req.ArrivalTime, req.Status); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"trips": Session().Rows()})
}

// POST /api/trips/save — persists pending changes, one update per changed row.
func SaveEdit(c *gin.Context) {
	saved, err := rosterService(c).Save()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	msg := "changes saved"
	if saved == 0 {
		msg = "nothing to save"
	}
	c.JSON(http.StatusOK, gin.H{
		"message": msg,
		"saved":   saved,
		"state":   Session().State().String(),
	})
}

// POST /api/trips/cancel — discards pending changes.
func CancelEdit(c *gin.Context) {
	if err := rosterService(c).Cancel(); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"state": Session().State().String(),
		"trips": Session().Rows(),
	})
}
