// controller/subscriber_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	quill_errors "github.com/dev-mohitbeniwal/quill/errors"
	"github.com/dev-mohitbeniwal/quill/model"
	"github.com/dev-mohitbeniwal/quill/service"
	"github.com/dev-mohitbeniwal/quill/util"
)

type SubscriberController struct {
	subscriberService service.ISubscriberService
}

func NewSubscriberController(subscriberService service.ISubscriberService) *SubscriberController {
	return &SubscriberController{subscriberService: subscriberService}
}

func (sc *SubscriberController) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/subscribers", sc.Subscribe)
	r.DELETE("/subscribers/:email", sc.Unsubscribe)
}

func (sc *SubscriberController) Subscribe(c *gin.Context) {
	var in model.SubscribeRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "a valid email address is required", quill_errors.ErrInvalidSubscriberData)
		return
	}
	msg, err := sc.subscriberService.Subscribe(c.Request.Context(), in.Email)
	if err != nil {
		if invalidInput(c, err) {
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to subscribe", err)
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: msg})
}

func (sc *SubscriberController) Unsubscribe(c *gin.Context) {
	msg, err := sc.subscriberService.Unsubscribe(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, quill_errors.ErrSubscriberNotFound) {
			util.RespondWithError(c, http.StatusNotFound, "Subscriber not found", err)
		} else {
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to unsubscribe", err)
		}
		return
	}
	c.JSON(http.StatusOK, model.MessageResponse{Message: msg})
}
