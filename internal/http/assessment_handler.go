package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smartdna/internal/domain"
	"smartdna/internal/service"
)

// AssessmentHandler expone la evaluacion DNA y su estado.
type AssessmentHandler struct {
	logger      *zap.Logger
	assessments *service.AssessmentService
}

func NewAssessmentHandler(logger *zap.Logger, assessments *service.AssessmentService) *AssessmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssessmentHandler{logger: logger, assessments: assessments}
}

// DNAStatus maneja GET /user/dna-status.
func (h *AssessmentHandler) DNAStatus(c *gin.Context) {
	user, _ := GetCurrentUser(c)
	c.JSON(http.StatusOK, h.assessments.Status(user))
}

// Status maneja GET /assessment/status.
func (h *AssessmentHandler) Status(c *gin.Context) {
	user, _ := GetCurrentUser(c)
	if !user.AssessmentCompleted || user.SuperAdmin {
		c.JSON(http.StatusOK, gin.H{"completed": user.AssessmentCompleted, "profile": nil})
		return
	}

	profile, ok, err := h.assessments.Profile(c.Request.Context(), user.ID)
	if err != nil {
		h.logger.Error("load dna profile failed", zap.String("user_id", user.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}
	if !ok {
		c.JSON(http.StatusOK, gin.H{"completed": user.AssessmentCompleted, "profile": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"completed": true, "profile": profile.Context()})
}

type videoTranscript struct {
	RoundNumber int    `json:"round_number"`
	Transcript  string `json:"transcript"`
}

// Analyze maneja POST /assessment/analyze.
func (h *AssessmentHandler) Analyze(c *gin.Context) {
	user, _ := GetCurrentUser(c)
	if user.SuperAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "SuperAdmin profile is not assessable"})
		return
	}

	var req struct {
		CompanyName string            `json:"company_name" binding:"required"`
		Videos      []videoTranscript `json:"videos" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid assessment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	transcripts := make([]domain.Transcript, 0, len(req.Videos))
	for _, v := range req.Videos {
		transcripts = append(transcripts, domain.Transcript{Round: v.RoundNumber, Content: v.Transcript})
	}

	res, err := h.assessments.Analyze(c.Request.Context(), user.ID, req.CompanyName, transcripts)
	if err != nil {
		writeServiceError(c, h.logger, "analyze assessment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"dna_profile": gin.H{
			"leadership_style":   res.Profile.LeadershipStyle,
			"communication_tone": res.Profile.CommunicationTone,
			"core_values":        res.Profile.CoreValues,
			"hub_alignments":     res.Profile.HubAlignments,
		},
		"report": res.Report,
	})
}

// Questions maneja GET /assessment/questions/:round.
func (h *AssessmentHandler) Questions(c *gin.Context) {
	round, err := strconv.Atoi(c.Param("round"))
	if err != nil || round < 1 || round > len(domain.AssessmentCatalog) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid round number"})
		return
	}
	c.JSON(http.StatusOK, domain.AssessmentCatalog[round-1])
}
