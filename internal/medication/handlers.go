package medication

import (
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"herbwise/internal/utility"
)

var store *Store

func InitMedicationPackage(pool *pgxpool.Pool) {
	store = NewStore(pool)
}

type MedicationRequest struct {
	Name      string   `json:"name"`
	Dosage    string   `json:"dosage"`
	Frequency string   `json:"frequency"`
	TimeOfDay []string `json:"time_of_day"`
	Notes     *string  `json:"notes"`
}

type IntakeLogRequest struct {
	ScheduledTime string `json:"scheduled_time"`
	Taken         bool   `json:"taken"`
	LogDate       string `json:"log_date"`
}

func CreateMedicationHandler(c echo.Context) error {
	var req MedicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Dosage) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name and dosage are required"})
	}

	m := Medication{
		UserID:    utility.UserID(c),
		Name:      strings.TrimSpace(req.Name),
		Dosage:    strings.TrimSpace(req.Dosage),
		Frequency: req.Frequency,
		TimeOfDay: req.TimeOfDay,
		Notes:     req.Notes,
	}
	if err := store.Create(c.Request().Context(), &m); err != nil {
		log.Error().Err(err).Msg("Failed to create medication")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save medication"})
	}
	return c.JSON(http.StatusCreated, m)
}

func ListMedicationsHandler(c echo.Context) error {
	meds, err := store.List(c.Request().Context(), utility.UserID(c))
	if err != nil {
		log.Error().Err(err).Msg("Failed to list medications")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve medications"})
	}
	return c.JSON(http.StatusOK, meds)
}

func UpdateMedicationHandler(c echo.Context) error {
	var req MedicationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Dosage) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name and dosage are required"})
	}

	m := Medication{
		ID:        c.Param("id"),
		UserID:    utility.UserID(c),
		Name:      strings.TrimSpace(req.Name),
		Dosage:    strings.TrimSpace(req.Dosage),
		Frequency: req.Frequency,
		TimeOfDay: req.TimeOfDay,
		Notes:     req.Notes,
	}
	if err := store.Update(c.Request().Context(), &m); err != nil {
		if err == ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Medication not found"})
		}
		log.Error().Err(err).Msg("Failed to update medication")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update medication"})
	}
	return c.JSON(http.StatusOK, m)
}

func DeleteMedicationHandler(c echo.Context) error {
	err := store.Delete(c.Request().Context(), utility.UserID(c), c.Param("id"))
	if err != nil {
		if err == ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Medication not found"})
		}
		log.Error().Err(err).Msg("Failed to delete medication")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete medication"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Medication deleted"})
}

func LogIntakeHandler(c echo.Context) error {
	userID := utility.UserID(c)
	medicationID := c.Param("id")

	ok, err := store.owns(c.Request().Context(), userID, medicationID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to verify medication ownership")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save log"})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Medication not found"})
	}

	var req IntakeLogRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	if req.ScheduledTime == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Scheduled time is required"})
	}
	if req.LogDate == "" {
		req.LogDate = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", req.LogDate); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	l := IntakeLog{
		MedicationID:  medicationID,
		ScheduledTime: req.ScheduledTime,
		Taken:         req.Taken,
		LogDate:       req.LogDate,
	}
	if err := store.UpsertLog(c.Request().Context(), &l); err != nil {
		log.Error().Err(err).Msg("Failed to save medication log")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to save log"})
	}
	return c.JSON(http.StatusOK, l)
}

func ListIntakeLogsHandler(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		date = time.Now().UTC().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	logs, err := store.LogsForDate(c.Request().Context(), utility.UserID(c), date)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list medication logs")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to retrieve logs"})
	}
	return c.JSON(http.StatusOK, logs)
}
