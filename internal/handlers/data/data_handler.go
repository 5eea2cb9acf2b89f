// internal/handlers/data/data_handler.go
package data

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"rentsmart-service/internal/domain/fleet"
	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/pkg/response"
	"rentsmart-service/internal/repository/redisstore"
	"rentsmart-service/internal/service/dataio"
)

type DataHandler struct {
	store       *redisstore.Store
	dataService *dataio.DataService
	logger      *zap.Logger
}

func NewDataHandler(store *redisstore.Store, dataService *dataio.DataService, logger *zap.Logger) *DataHandler {
	return &DataHandler{store: store, dataService: dataService, logger: logger}
}

// GetCollection returns the stored records of a collection as-is.
func (h *DataHandler) GetCollection(c *gin.Context) {
	collection := c.Param("collection")
	var (
		records any
		err     error
	)
	switch collection {
	case dataio.CollectionVehicles:
		records, err = h.store.Vehicles(c.Request.Context())
	case dataio.CollectionCustomers:
		records, err = h.store.Customers(c.Request.Context())
	case dataio.CollectionContracts:
		records, err = h.store.Contracts(c.Request.Context())
	default:
		response.NotFound(c, "unknown collection")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read collection", err)
		return
	}
	response.Success(c, http.StatusOK, "collection retrieved", records)
}

// SaveCollection replaces the whole collection with the posted array.
// Last-write-wins; there is no merge.
func (h *DataHandler) SaveCollection(c *gin.Context) {
	collection := c.Param("collection")
	ctx := c.Request.Context()
	var err error
	switch collection {
	case dataio.CollectionVehicles:
		var records []fleet.Vehicle
		if bindErr := c.ShouldBindJSON(&records); bindErr != nil {
			response.ValidationError(c, "invalid records", bindErr)
			return
		}
		err = h.store.SaveVehicles(ctx, records)
	case dataio.CollectionCustomers:
		var records []fleet.Customer
		if bindErr := c.ShouldBindJSON(&records); bindErr != nil {
			response.ValidationError(c, "invalid records", bindErr)
			return
		}
		err = h.store.SaveCustomers(ctx, records)
	case dataio.CollectionContracts:
		var records []fleet.Contract
		if bindErr := c.ShouldBindJSON(&records); bindErr != nil {
			response.ValidationError(c, "invalid records", bindErr)
			return
		}
		err = h.store.SaveContracts(ctx, records)
	default:
		response.NotFound(c, "unknown collection")
		return
	}
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save collection", err)
		return
	}
	response.Success(c, http.StatusOK, "collection saved", nil)
}

// ExportCSV downloads a collection as <collection>.csv. An empty collection
// is a neutral outcome, not an error.
func (h *DataHandler) ExportCSV(c *gin.Context) {
	filename, data, err := h.dataService.ExportCSV(c.Request.Context(), c.Param("collection"))
	if err != nil {
		if errors.Is(err, xerrors.ErrInsufficientData) {
			response.Success(c, http.StatusOK, "no data to export", nil)
			return
		}
		h.respondExportErr(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// ImportCSV replaces a collection from an uploaded CSV file. A malformed
// file fails the import and leaves the store unchanged.
func (h *DataHandler) ImportCSV(c *gin.Context) {
	file, _, err := c.Request.FormFile("file")
	if err != nil {
		response.ValidationError(c, "missing file upload", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.ValidationError(c, "failed to read upload", err)
		return
	}

	count, err := h.dataService.ImportCSV(c.Request.Context(), c.Param("collection"), data)
	if err != nil {
		switch {
		case errors.Is(err, xerrors.ErrUnknownCollection):
			response.NotFound(c, "unknown collection")
		case errors.Is(err, xerrors.ErrStorageWrite):
			response.Error(c, http.StatusInternalServerError, "failed to save collection", err)
		default:
			// Malformed file: shape mismatch, empty input or a field that
			// would not coerce. The store is unchanged.
			response.Error(c, http.StatusBadRequest, "import failed: invalid file format", err)
		}
		return
	}
	response.Success(c, http.StatusOK, "import successful", gin.H{"imported": count})
}

// ExportToSheets pushes a collection to the configured spreadsheet.
func (h *DataHandler) ExportToSheets(c *gin.Context) {
	collection := c.Param("collection")
	err := h.dataService.ExportToSheets(c.Request.Context(), collection)
	if err != nil {
		if errors.Is(err, xerrors.ErrInsufficientData) {
			response.Success(c, http.StatusOK, "no data to export", nil)
			return
		}
		h.respondExportErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, "exported to spreadsheet", gin.H{"sheet": collection})
}

// ImportFromSheets pulls a collection from the configured spreadsheet. A
// sheet without usable rows imports nothing and reports the neutral
// outcome.
func (h *DataHandler) ImportFromSheets(c *gin.Context) {
	collection := c.Param("collection")
	count, err := h.dataService.ImportFromSheets(c.Request.Context(), collection)
	if err != nil {
		h.respondExportErr(c, err)
		return
	}
	if count == 0 {
		response.Success(c, http.StatusOK, "no usable data found in the sheet", gin.H{"imported": 0})
		return
	}
	response.Success(c, http.StatusOK, "import successful", gin.H{"imported": count})
}

// GetSettings returns the opaque user-settings blob.
func (h *DataHandler) GetSettings(c *gin.Context) {
	blob, err := h.store.Settings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read settings", err)
		return
	}
	response.Success(c, http.StatusOK, "settings retrieved", blob)
}

// SaveSettings replaces the user-settings blob.
func (h *DataHandler) SaveSettings(c *gin.Context) {
	blob, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.ValidationError(c, "failed to read settings", err)
		return
	}
	if err := h.store.SaveSettings(c.Request.Context(), blob); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	response.Success(c, http.StatusOK, "settings saved", nil)
}

type sheetsConfigRequest struct {
	APIKey  string `json:"apiKey" binding:"required"`
	SheetID string `json:"sheetId" binding:"required"`
}

// GetSheetsConfig returns the stored spreadsheet configuration.
func (h *DataHandler) GetSheetsConfig(c *gin.Context) {
	ctx := c.Request.Context()
	apiKey, err := h.store.SheetsAPIKey(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read configuration", err)
		return
	}
	sheetID, err := h.store.SheetID(ctx)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read configuration", err)
		return
	}
	response.Success(c, http.StatusOK, "configuration retrieved", gin.H{
		"apiKey":  apiKey,
		"sheetId": sheetID,
	})
}

// SaveSheetsConfig stores the API key and sheet id. Both are required
// together here even though the store keeps them under separate keys.
func (h *DataHandler) SaveSheetsConfig(c *gin.Context) {
	var req sheetsConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "please enter both API key and sheet ID", err)
		return
	}
	ctx := c.Request.Context()
	if err := h.store.SetSheetsAPIKey(ctx, req.APIKey); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save configuration", err)
		return
	}
	if err := h.store.SetSheetID(ctx, req.SheetID); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to save configuration", err)
		return
	}
	response.Success(c, http.StatusOK, "configuration saved", nil)
}

func (h *DataHandler) respondExportErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, xerrors.ErrUnknownCollection):
		response.NotFound(c, "unknown collection")
	case errors.Is(err, xerrors.ErrSheetsConfigMissing):
		response.Error(c, http.StatusPreconditionFailed,
			"please set your spreadsheet API key and sheet ID in settings", err)
	case errors.Is(err, xerrors.ErrShapeMismatch):
		response.Error(c, http.StatusBadRequest, "malformed data", err)
	case errors.Is(err, xerrors.ErrStorageWrite):
		response.Error(c, http.StatusInternalServerError, "failed to save collection", err)
	default:
		h.logger.Error("data transfer failed", zap.Error(err))
		response.Error(c, http.StatusBadGateway, "operation failed", err)
	}
}
