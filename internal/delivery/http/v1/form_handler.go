package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/itspb-ux/AccessHire/internal/delivery/http/response"
	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/apperror"
	"github.com/itspb-ux/AccessHire/pkg/validation"

	"github.com/gin-gonic/gin"
)

type FormHandler struct {
	formUC domain.FormUsecase
}

func NewFormHandler(r *gin.RouterGroup, formUC domain.FormUsecase, submitLimit gin.HandlerFunc) {
	handler := &FormHandler{formUC: formUC}

	forms := r.Group("/forms")
	{
		forms.GET("/roles", handler.Roles)
		forms.GET("/:role/schema", handler.Schema)
		forms.POST("/:role/validate", submitLimit, handler.Validate)
	}
}

// ListRoles godoc
// @Summary      List form roles
// @Tags         forms
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /forms/roles [get]
func (h *FormHandler) Roles(c *gin.Context) {
	response.Success(c, http.StatusOK, "Form roles", h.formUC.Roles(c.Request.Context()))
}

// GetFormSchema godoc
// @Summary      Get the field table for a role
// @Tags         forms
// @Produce      json
// @Param        role  path      string  true  "Form role"  Enums(candidate, employer)
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /forms/{role}/schema [get]
func (h *FormHandler) Schema(c *gin.Context) {
	specs, err := h.formUC.Schema(c.Request.Context(), validation.Role(c.Param("role")))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Form schema", specs)
}

// ValidateForm godoc
// @Summary      Validate a sign-up form
// @Description  Checks the role's required fields. Field values are never stored.
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        role    path      string             true  "Form role"  Enums(candidate, employer)
// @Param        fields  body      map[string]string  true  "Field name to value"
// @Success      200     {object}  response.Response
// @Failure      400     {object}  response.Response
// @Failure      422     {object}  response.Response
// @Failure      429     {object}  response.Response
// @Router       /forms/{role}/validate [post]
func (h *FormHandler) Validate(c *gin.Context) {
	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil && !errors.Is(err, io.EOF) {
		c.Error(apperror.BadRequest("Request body must be a JSON object of string fields"))
		return
	}

	result, err := h.formUC.Validate(c.Request.Context(), validation.Role(c.Param("role")), fields)
	if err != nil {
		c.Error(err)
		return
	}

	if !result.Valid {
		c.Error(apperror.Unprocessable("Validation failed", result))
		return
	}

	response.Success(c, http.StatusOK, "Form is valid", result)
}
