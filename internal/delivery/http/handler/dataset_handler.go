package handler

import (
	"net/http"

	"clinic-management-api/internal/usecase"
	"clinic-management-api/pkg/response"
)

type DatasetHandler struct {
	datasetUsecase usecase.DatasetUsecase
}

func NewDatasetHandler(datasetUsecase usecase.DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{datasetUsecase: datasetUsecase}
}

// Refresh re-fetches the remote dataset and replaces the mirror
func (h *DatasetHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if err := h.datasetUsecase.Refresh(r.Context()); err != nil {
		response.Error(w, http.StatusBadGateway, "Failed to refresh dataset", err.Error())
		return
	}

	response.Success(w, http.StatusOK, "Dataset refreshed successfully", nil)
}
