package v1

import (
	"net/http"
	"strconv"

	"github.com/itspb-ux/AccessHire/internal/delivery/http/response"
	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(r *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	employers := r.Group("/employers")
	{
		employers.GET("/dashboard", handler.Dashboard)
		employers.GET("/resources/:id", handler.GetResource)
	}
}

// EmployerDashboard godoc
// @Summary      Employer dashboard
// @Description  Analytics, interview checklist and compliance resources
// @Tags         employers
// @Produce      json
// @Param        company  query     string  true  "Company name shown in the greeting"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /employers/dashboard [get]
func (h *EmployerHandler) Dashboard(c *gin.Context) {
	dash, err := h.employerUC.Dashboard(c.Request.Context(), c.Query("company"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Employer dashboard", dash)
}

// GetResource godoc
// @Summary      Get a compliance resource
// @Tags         employers
// @Produce      json
// @Param        id   path      int  true  "Resource ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /employers/resources/{id} [get]
func (h *EmployerHandler) GetResource(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	res, err := h.employerUC.GetResource(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resource", res)
}
