package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/crownbraids/salon-scheduler/internal/audit"
	"github.com/crownbraids/salon-scheduler/internal/httperr"
	"github.com/crownbraids/salon-scheduler/internal/media"
	"github.com/crownbraids/salon-scheduler/internal/middleware"
	"github.com/crownbraids/salon-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type GalleryHandler struct {
	db      *gorm.DB
	storage *media.Storage
	audit   *audit.Dispatcher
}

func NewGalleryHandler(db *gorm.DB, storage *media.Storage, auditDispatcher *audit.Dispatcher) *GalleryHandler {
	return &GalleryHandler{
		db:      db,
		storage: storage,
		audit:   auditDispatcher,
	}
}

// ======================================================
// LIST (public)
// ======================================================

func (h *GalleryHandler) List(c *gin.Context) {
	q := h.db.Model(&models.GalleryImage{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}

	var images []models.GalleryImage
	if err := q.Order("created_at DESC").Find(&images).Error; err != nil {
		httperr.Internal(c, "failed_to_list_gallery", "Could not list gallery.")
		return
	}

	c.JSON(http.StatusOK, images)
}

// ======================================================
// UPLOAD (admin)
// ======================================================

func (h *GalleryHandler) Upload(c *gin.Context) {
	adminID, _ := middleware.CallerID(c)

	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read upload.")
		return
	}
	defer src.Close()

	key, url, err := h.storage.Upload(c.Request.Context(), src)
	if err != nil {
		httperr.Unavailable(c, "storage_error", "Could not store image.")
		return
	}

	img := models.GalleryImage{
		Title:      c.PostForm("title"),
		Category:   c.PostForm("category"),
		ObjectKey:  key,
		URL:        url,
		UploadedBy: adminID,
	}

	if err := h.db.Create(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_save_image", "Could not save image record.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "gallery_image_uploaded",
		Entity:   "gallery_image",
		EntityID: &img.ID,
	})

	c.JSON(http.StatusCreated, img)
}

// ======================================================
// DELETE (admin)
// ======================================================

func (h *GalleryHandler) Delete(c *gin.Context) {
	adminID, _ := middleware.CallerID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid image id.")
		return
	}

	var img models.GalleryImage
	if err := h.db.First(&img, id).Error; err != nil {
		httperr.NotFound(c, "image_not_found", "Image not found.")
		return
	}

	if err := h.storage.Delete(c.Request.Context(), img.ObjectKey); err != nil {
		httperr.Unavailable(c, "storage_error", "Could not delete stored image.")
		return
	}

	if err := h.db.Delete(&img).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_image", "Could not delete image record.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &adminID,
		Action:   "gallery_image_deleted",
		Entity:   "gallery_image",
		EntityID: &img.ID,
	})

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
