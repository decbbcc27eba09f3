package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lotrinh/internal/models/request_models"
	"lotrinh/internal/models/response_models"
	"lotrinh/internal/services"
	"lotrinh/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{itineraryService: itineraryService}
}

func (i *ItineraryController) GetAllItineraries(c *gin.Context) {
	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itineraries)
}

func (i *ItineraryController) GetItineraryByShareableID(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItineraryByShareableID(c.Request.Context(), c.Param("shareableId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, itinerary)
}

func (i *ItineraryController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Vui lòng cung cấp tỉnh thành (province) và số ngày (days)")
		return
	}

	outcome, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req.Province, req.Days)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	switch outcome.Status {
	case response_models.GenerateStatusNoDataFound:
		c.JSON(http.StatusNotFound, gin.H{
			"message":     "Không tìm thấy dữ liệu cho tỉnh này",
			"status":      outcome.Status,
			"currentData": outcome.CurrentData,
		})
	case response_models.GenerateStatusInsufficientData:
		c.JSON(http.StatusOK, gin.H{
			"message":           "Đã thu thập thêm dữ liệu nhưng vẫn chưa đủ để tạo lộ trình",
			"status":            outcome.Status,
			"newDataAdded":      outcome.NewDataAdded,
			"totalDestinations": outcome.TotalAfter,
			"note":              "Có thể thử với ít ngày hơn hoặc tỉnh thành khác",
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"message":      "Tạo lộ trình thành công!",
			"status":       outcome.Status,
			"itinerary":    outcome.Itinerary,
			"shareableUrl": outcome.ShareableURL,
		})
	}
}

func (i *ItineraryController) UpdateItinerary(c *gin.Context) {
	var req request_models.UpdateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Items == nil {
		utils.RespondError(c, http.StatusBadRequest, "Vui lòng cung cấp mảng items để cập nhật")
		return
	}

	itinerary, err := i.itineraryService.ReplaceItineraryItems(c.Request.Context(), c.Param("shareableId"), req.Items)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":             "Cập nhật lộ trình thành công!",
		"status":              "success",
		"itinerary":           itinerary,
		"updated_items_count": len(req.Items),
	})
}
