package handlers

import (
	"errors"
	"net/http"

	"github.com/Conceptual-Machines/counterpoint-api/internal/presets"
	"github.com/gin-gonic/gin"
)

type PresetHandler struct {
	loader   *presets.Loader
	maxSpace uint64
}

func NewPresetHandler(loader *presets.Loader, maxSpace uint64) *PresetHandler {
	return &PresetHandler{loader: loader, maxSpace: maxSpace}
}

// presetView marks which species the generator can run on a preset under
// the configured search space ceiling
type presetView struct {
	presets.Preset
	GenerableSpecies []int `json:"generable_species"`
}

func (h *PresetHandler) view(p presets.Preset) presetView {
	return presetView{Preset: p, GenerableSpecies: p.GenerableSpecies(h.maxSpace)}
}

// ListPresets returns the cantus firmus catalog
func (h *PresetHandler) ListPresets(c *gin.Context) {
	all := h.loader.List()
	views := make([]presetView, 0, len(all))
	for _, p := range all {
		views = append(views, h.view(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"presets": views,
		"count":   len(views),
	})
}

// GetPreset returns one preset by name
func (h *PresetHandler) GetPreset(c *gin.Context) {
	p, err := h.loader.Get(c.Param("name"))
	if errors.Is(err, presets.ErrPresetNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Preset not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load preset"})
		return
	}
	c.JSON(http.StatusOK, h.view(p))
}
