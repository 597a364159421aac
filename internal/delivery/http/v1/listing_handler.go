package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/itspb-ux/AccessHire/internal/delivery/http/response"
	"github.com/itspb-ux/AccessHire/internal/domain"
	"github.com/itspb-ux/AccessHire/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	listingUC domain.ListingUsecase
}

func NewListingHandler(r *gin.RouterGroup, listingUC domain.ListingUsecase) {
	handler := &ListingHandler{listingUC: listingUC}

	listings := r.Group("/listings")
	{
		listings.GET("", handler.Search)
		listings.GET("/:id", handler.GetDetails)
	}
	r.GET("/facets", handler.Facets)
}

// SearchListings godoc
// @Summary      Search job listings
// @Description  Filter listings by free text and accessibility facets. Every selected facet must be present on a listing.
// @Tags         listings
// @Produce      json
// @Param        q       query     string    false  "Text matched against title, organization and summary"
// @Param        facets  query     []string  false  "Facet tags, repeated or comma-separated"  collectionFormat(csv)
// @Success      200     {object}  response.Response
// @Router       /listings [get]
func (h *ListingHandler) Search(c *gin.Context) {
	query := c.Query("q")
	facets := splitFacets(c.QueryArray("facets"))

	listings, err := h.listingUC.Search(c.Request.Context(), query, facets)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Listing search", gin.H{
		"listings": listings,
		"total":    len(listings),
	})
}

// GetListing godoc
// @Summary      Get listing details
// @Tags         listings
// @Produce      json
// @Param        id   path      int  true  "Listing ID"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /listings/{id} [get]
func (h *ListingHandler) GetDetails(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return
	}

	listing, err := h.listingUC.GetListing(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Listing details", listing)
}

// ListFacets godoc
// @Summary      List accessibility facets
// @Description  Facet catalog; filterable facets come first
// @Tags         listings
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /facets [get]
func (h *ListingHandler) Facets(c *gin.Context) {
	facets, err := h.listingUC.Facets(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Facet catalog", facets)
}

// splitFacets accepts both ?facets=a&facets=b and ?facets=a,b
func splitFacets(values []string) []string {
	var out []string
	for _, v := range values {
		out = append(out, strings.Split(v, ",")...)
	}
	return out
}
