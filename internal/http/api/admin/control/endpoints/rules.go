package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/marquee-labs/marquee/internal/db"
	"github.com/marquee-labs/marquee/internal/http/api"
	"github.com/marquee-labs/marquee/internal/http/api/admin/control/packets"
	"github.com/marquee-labs/marquee/internal/http/middleware"
	"github.com/marquee-labs/marquee/internal/model"
	"github.com/marquee-labs/marquee/internal/schedule"
)

type RuleController struct {
	store db.Store
}

func NewRuleController(store db.Store) *RuleController {
	return &RuleController{store: store}
}

func RuleModule(store db.Store) api.Module {
	ctl := NewRuleController(store)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/rules", ctl.listRules)
		c.POST("/rules", ctl.createRule)
		c.GET("/rules/:id", ctl.getRule)
		c.PUT("/rules/:id", ctl.updateRule)
		c.DELETE("/rules/:id", ctl.deleteRule)

		// order is part of the configuration, so changing it is its own
		// operation rather than a side effect of updates
		c.POST("/rules/reorder", ctl.reorderRules)
	})
}

func (r *RuleController) listRules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	list, err := r.store.ListRules()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "failed to list rules"}
	}

	response := make([]packets.RuleResponse, 0, len(list))
	for _, it := range list {
		response = append(response, packets.NewRuleResponse(it))
	}
	return response, nil
}

func (r *RuleController) getRule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	rule, err := r.store.GetRuleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "rule not found"}
	}
	return packets.NewRuleResponse(rule), nil
}

func (r *RuleController) createRule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateRuleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if apiErr := validateRuleFields(request.Days, &request.StartTime, &request.EndTime, request.Menu, request.Slideshow); apiErr != nil {
		return nil, apiErr
	}

	enabled := true
	if request.Enabled != nil {
		enabled = *request.Enabled
	}

	rule, err := r.store.CreateRule(request.Name, request.Days, request.StartTime, request.EndTime, request.Menu, request.Slideshow, enabled)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create rule"}
	}

	log.Info().Int("rule_id", rule.ID).Str("name", rule.Name).Msg("rule created")
	middleware.NotifyScheduleChanged()
	return packets.NewRuleResponse(rule), nil
}

func (r *RuleController) updateRule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateRuleRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	current, err := r.store.GetRuleByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "rule not found"}
	}

	if apiErr := validateRuleFields(request.Days, request.StartTime, request.EndTime, request.Menu, request.Slideshow); apiErr != nil {
		return nil, apiErr
	}
	if apiErr := validateMergedReferences(current, request.Menu, request.Slideshow); apiErr != nil {
		return nil, apiErr
	}

	rule, err := r.store.UpdateRule(id, request.Name, request.Days, request.StartTime, request.EndTime, request.Menu, request.Slideshow, request.Enabled)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update rule"}
	}

	middleware.NotifyScheduleChanged()
	return packets.NewRuleResponse(rule), nil
}

func (r *RuleController) deleteRule(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if _, err := r.store.GetRuleByID(id); err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "rule not found"}
	}

	if err := r.store.DeleteRule(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete rule"}
	}

	middleware.NotifyScheduleChanged()
	return gin.H{"message": "deleted"}, nil
}

func (r *RuleController) reorderRules(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.ReorderRulesRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := r.store.ReorderRules(request.RuleIDs); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not reorder rules"}
	}

	middleware.NotifyScheduleChanged()
	return gin.H{"message": "reordered"}, nil
}

// validateRuleFields rejects what the resolver would otherwise silently
// ignore: unknown weekday tokens, malformed times, and a rule referencing
// both a menu and a slideshow. Nil fields are "unchanged" on update.
func validateRuleFields(days []string, startTime, endTime, menu, slideshow *string) *api.APIError {
	if days != nil {
		if _, err := schedule.ParseDays(days); err != nil {
			return &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
		}
	}
	if startTime != nil {
		if _, err := schedule.ParseTimeOfDay(*startTime); err != nil {
			return &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
		}
	}
	if endTime != nil {
		if _, err := schedule.ParseTimeOfDay(*endTime); err != nil {
			return &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
		}
	}
	if menu != nil && slideshow != nil && *menu != "" && *slideshow != "" {
		return &api.APIError{Code: http.StatusBadRequest, Message: "a rule references either a menu or a slideshow, not both"}
	}
	return nil
}

// validateMergedReferences applies an update's menu/slideshow fields on top
// of the stored rule and rejects the write if the result would hold both
// references. Checking the request alone would let a slideshow-only update
// slip past a stored menu and persist a rule the resolver only ever reads
// half of.
func validateMergedReferences(current model.Rule, menu, slideshow *string) *api.APIError {
	mergedMenu := ""
	if current.Menu != nil {
		mergedMenu = *current.Menu
	}
	if menu != nil {
		mergedMenu = *menu
	}
	mergedSlideshow := ""
	if current.Slideshow != nil {
		mergedSlideshow = *current.Slideshow
	}
	if slideshow != nil {
		mergedSlideshow = *slideshow
	}
	if mergedMenu != "" && mergedSlideshow != "" {
		return &api.APIError{Code: http.StatusBadRequest, Message: "a rule references either a menu or a slideshow, not both; clear the other reference in the same update"}
	}
	return nil
}
