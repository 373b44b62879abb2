package controllers

import (
	"net/http"
	"strconv"

	"fitlog-be/internal/models"
	"fitlog-be/internal/service"

	"github.com/gin-gonic/gin"
)

type ExerciseController struct {
	exerciseService service.ExerciseService
}

func NewExerciseController(exerciseService service.ExerciseService) *ExerciseController {
	return &ExerciseController{
		exerciseService: exerciseService,
	}
}

// AddExercise handles POST /api/exercise/add
func (ec *ExerciseController) AddExercise(c *gin.Context) {
	var req models.AddExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		c.String(http.StatusBadRequest, "invalid request body")
		return
	}

	response, err := ec.exerciseService.AddExercise(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetLog handles GET /api/exercise/log
func (ec *ExerciseController) GetLog(c *gin.Context) {
	userID := c.Query("userId")
	from := c.Query("from")
	to := c.Query("to")

	// limit is coerced to a number; absent or malformed input means 0,
	// which the query layer treats as unlimited.
	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	response, err := ec.exerciseService.GetLog(userID, from, to, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
