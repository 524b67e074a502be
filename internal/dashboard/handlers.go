package dashboard

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/huangsam/treehealth/core"
	"github.com/huangsam/treehealth/schema"
)

// selectedSpecies reads the species query parameter, falling back to the default.
func (s *Server) selectedSpecies(c *gin.Context) string {
	if species := c.Query("species"); species != "" {
		return species
	}
	return s.snap.DefaultSpecies()
}

func (s *Server) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"title":    "NYC Street Tree Health",
		"species":  s.snap.Species(),
		"selected": s.snap.DefaultSpecies(),
	})
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"species": len(s.snap.Species()),
	})
}

func (s *Server) handleSpecies(c *gin.Context) {
	c.JSON(http.StatusOK, schema.SpeciesList{
		Species: s.snap.Species(),
		Default: s.snap.DefaultSpecies(),
	})
}

func (s *Server) handleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.snap.Summary())
}

// renderChart memoizes charts for known species only. Unknown species
// render as charts with no traces and are never stored.
func (s *Server) renderChart(kind, species string, render func(*core.Snapshot, string) schema.ChartSpec) schema.ChartSpec {
	if !s.snap.HasSpecies(species) {
		return render(s.snap, species)
	}
	return s.charts.getOrRender(cacheKey(kind, species), func() schema.ChartSpec {
		return render(s.snap, species)
	})
}

func (s *Server) handleProportionChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.renderChart("proportions", s.selectedSpecies(c), core.RenderProportionChart))
}

func (s *Server) handleStewardChart(c *gin.Context) {
	c.JSON(http.StatusOK, s.renderChart("steward", s.selectedSpecies(c), core.RenderStewardChart))
}
