package http

import (
	"time"

	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/domain/scoring"
	"github.com/osgb-lab/riskdesk/pkg/domain/types"
	"github.com/osgb-lab/riskdesk/pkg/usecase"
)

// Scoring fields stay pointers end to end: a missing input is null on the
// wire, never zero.

type levelResponse struct {
	Label     string `json:"label"`
	CSSClass  string `json:"css_class"`
	Color     string `json:"color"`
	TextColor string `json:"text_color"`
}

func toLevelResponse(level scoring.Level) levelResponse {
	return levelResponse{
		Label:     level.Label,
		CSSClass:  level.CSSClass,
		Color:     level.Color,
		TextColor: level.TextColor,
	}
}

type caseResponse struct {
	ID            int64               `json:"id"`
	FacilityID    int64               `json:"facility_id"`
	ToolID        *types.ToolID       `json:"tool_id"`
	ScoringMethod types.ScoringMethod `json:"scoring_method"`
	WorkflowType  types.WorkflowType  `json:"workflow_type"`
	Status        types.CaseStatus    `json:"status"`
	FinalComments string              `json:"final_comments"`
	Participants  string              `json:"participants"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
	CompletedAt   *time.Time          `json:"completed_at"`
}

func toCaseResponse(c *model.Case) caseResponse {
	return caseResponse{
		ID:            c.ID,
		FacilityID:    c.FacilityID,
		ToolID:        c.ToolID,
		ScoringMethod: c.ScoringMethod,
		WorkflowType:  c.WorkflowType,
		Status:        c.Status,
		FinalComments: c.FinalComments,
		Participants:  c.Participants,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		CompletedAt:   c.CompletedAt,
	}
}

type answerResponse struct {
	ID           string              `json:"id"`
	CaseID       int64               `json:"case_id"`
	QuestionID   types.QuestionID    `json:"question_id"`
	Response     *types.Response     `json:"response"`
	Notes        string              `json:"notes"`
	RiskPriority *types.RiskPriority `json:"risk_priority"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func toAnswerResponse(a *model.Answer) answerResponse {
	return answerResponse{
		ID:           a.ID,
		CaseID:       a.CaseID,
		QuestionID:   a.QuestionID,
		Response:     a.Response,
		Notes:        a.Notes,
		RiskPriority: a.RiskPriority,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

type riskResponse struct {
	ID     int64 `json:"id"`
	CaseID int64 `json:"case_id"`

	Description  string              `json:"description"`
	Acceptable   *bool               `json:"acceptable"`
	Evidence     string              `json:"evidence"`
	RiskPriority *types.RiskPriority `json:"risk_priority"`

	Category        string `json:"category"`
	SubCategory     string `json:"sub_category"`
	HazardSource    string `json:"hazard_source"`
	LegalBasis      string `json:"legal_basis"`
	AffectedPersons string `json:"affected_persons"`
	MeasureText     string `json:"measure_text"`
	CatalogID       *int   `json:"catalog_id"`

	MitigationStrategy types.MitigationStrategy `json:"mitigation_strategy"`
	EstimatedBudget    *float64                 `json:"estimated_budget"`
	ResponsiblePerson  string                   `json:"responsible_person"`
	DueDate            *time.Time               `json:"due_date"`

	ScoringMethod     types.ScoringMethod `json:"scoring_method"`
	KinneyProbability *float64            `json:"kinney_probability"`
	KinneyFrequency   *float64            `json:"kinney_frequency"`
	KinneySeverity    *int                `json:"kinney_severity"`
	KinneyScore       *int                `json:"kinney_score"`
	MatrixProbability *int                `json:"matrix_probability"`
	MatrixSeverity    *int                `json:"matrix_severity"`
	MatrixScore       *int                `json:"matrix_score"`

	Score     *int          `json:"score"`
	RiskLevel levelResponse `json:"risk_level"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRiskResponse(r *model.Risk) riskResponse {
	return riskResponse{
		ID:                 r.ID,
		CaseID:             r.CaseID,
		Description:        r.Description,
		Acceptable:         r.Acceptable,
		Evidence:           r.Evidence,
		RiskPriority:       r.RiskPriority,
		Category:           r.Category,
		SubCategory:        r.SubCategory,
		HazardSource:       r.HazardSource,
		LegalBasis:         r.LegalBasis,
		AffectedPersons:    r.AffectedPersons,
		MeasureText:        r.MeasureText,
		CatalogID:          r.CatalogID,
		MitigationStrategy: r.MitigationStrategy,
		EstimatedBudget:    r.EstimatedBudget,
		ResponsiblePerson:  r.ResponsiblePerson,
		DueDate:            r.DueDate,
		ScoringMethod:      r.ScoringMethod,
		KinneyProbability:  r.KinneyProbability,
		KinneyFrequency:    r.KinneyFrequency,
		KinneySeverity:     r.KinneySeverity,
		KinneyScore:        r.KinneyScore,
		MatrixProbability:  r.MatrixProbability,
		MatrixSeverity:     r.MatrixSeverity,
		MatrixScore:        r.MatrixScore,
		Score:              r.Score(),
		RiskLevel:          toLevelResponse(r.Level()),
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

type measureResponse struct {
	ID     model.MeasureID `json:"id"`
	CaseID int64           `json:"case_id"`

	AnswerID *string `json:"answer_id"`
	RiskID   *int64  `json:"risk_id"`

	Description       string     `json:"description"`
	RequiredExpertise string     `json:"required_expertise"`
	ResponsiblePerson string     `json:"responsible_person"`
	Budget            string     `json:"budget"`
	PlannedStart      *time.Time `json:"planned_start"`
	PlannedEnd        *time.Time `json:"planned_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toMeasureResponse(m *model.Measure) measureResponse {
	return measureResponse{
		ID:                m.ID,
		CaseID:            m.CaseID,
		AnswerID:          m.AnswerID,
		RiskID:            m.RiskID,
		Description:       m.Description,
		RequiredExpertise: m.RequiredExpertise,
		ResponsiblePerson: m.ResponsiblePerson,
		Budget:            m.Budget,
		PlannedStart:      m.PlannedStart,
		PlannedEnd:        m.PlannedEnd,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toMeasureResponses(measures []*model.Measure) []measureResponse {
	result := make([]measureResponse, 0, len(measures))
	for _, m := range measures {
		result = append(result, toMeasureResponse(m))
	}
	return result
}

type controlRecordResponse struct {
	ID     model.ControlRecordID `json:"id"`
	RiskID int64                 `json:"risk_id"`
	Seq    int64                 `json:"seq"`

	ControlDate time.Time `json:"control_date"`
	Auditor     string    `json:"auditor"`
	Note        string    `json:"note"`

	ScoringMethod     types.ScoringMethod `json:"scoring_method"`
	KinneyProbability *float64            `json:"kinney_probability"`
	KinneyFrequency   *float64            `json:"kinney_frequency"`
	KinneySeverity    *int                `json:"kinney_severity"`
	MatrixProbability *int                `json:"matrix_probability"`
	MatrixSeverity    *int                `json:"matrix_severity"`

	ResidualScore *int          `json:"residual_score"`
	RiskLevel     levelResponse `json:"risk_level"`

	CreatedAt time.Time `json:"created_at"`
}

func toControlRecordResponse(c *model.ControlRecord) controlRecordResponse {
	return controlRecordResponse{
		ID:                c.ID,
		RiskID:            c.RiskID,
		Seq:               c.Seq,
		ControlDate:       c.ControlDate,
		Auditor:           c.Auditor,
		Note:              c.Note,
		ScoringMethod:     c.ScoringMethod,
		KinneyProbability: c.KinneyProbability,
		KinneyFrequency:   c.KinneyFrequency,
		KinneySeverity:    c.KinneySeverity,
		MatrixProbability: c.MatrixProbability,
		MatrixSeverity:    c.MatrixSeverity,
		ResidualScore:     c.ResidualScore,
		RiskLevel:         toLevelResponse(c.Level()),
		CreatedAt:         c.CreatedAt,
	}
}

type teamMemberResponse struct {
	ID        model.TeamMemberID `json:"id"`
	CaseID    int64              `json:"case_id"`
	Role      types.TeamRole     `json:"role"`
	Name      string             `json:"name"`
	Title     string             `json:"title"`
	CreatedAt time.Time          `json:"created_at"`
}

func toTeamMemberResponse(m *model.TeamMember) teamMemberResponse {
	return teamMemberResponse{
		ID:        m.ID,
		CaseID:    m.CaseID,
		Role:      m.Role,
		Name:      m.Name,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
	}
}

type catalogEntryResponse struct {
	ID              int    `json:"id"`
	Group           string `json:"group"`
	Topic           string `json:"topic"`
	Hazard          string `json:"hazard"`
	Risk            string `json:"risk"`
	LegalBasis      string `json:"legal_basis"`
	Measure         string `json:"measure"`
	AffectedPersons string `json:"affected_persons"`
	SourceFile      string `json:"source_file"`
}

func toCatalogEntryResponse(e *model.CatalogEntry) catalogEntryResponse {
	return catalogEntryResponse{
		ID:              e.ID,
		Group:           e.Group,
		Topic:           e.Topic,
		Hazard:          e.Hazard,
		Risk:            e.Risk,
		LegalBasis:      e.LegalBasis,
		Measure:         e.Measure,
		AffectedPersons: e.AffectedPersons,
		SourceFile:      e.SourceFile,
	}
}

type catalogPageResponse struct {
	Results []catalogEntryResponse `json:"results"`
	Total   int                    `json:"total"`
	HasMore bool                   `json:"has_more"`
}

func toCatalogPageResponse(page *interfaces.CatalogPage) catalogPageResponse {
	results := make([]catalogEntryResponse, 0, len(page.Results))
	for _, e := range page.Results {
		results = append(results, toCatalogEntryResponse(e))
	}
	return catalogPageResponse{
		Results: results,
		Total:   page.Total,
		HasMore: page.HasMore,
	}
}

type actionPlanEntryResponse struct {
	AnswerID *string `json:"answer_id"`
	RiskID   *int64  `json:"risk_id"`

	Description string                 `json:"description"`
	Status      types.ActionPlanStatus `json:"status"`
	Priority    *types.RiskPriority    `json:"priority"`
	Score       *int                   `json:"score"`
	RiskLevel   levelResponse          `json:"risk_level"`
	Measures    []measureResponse      `json:"measures"`
}

func toActionPlanEntryResponse(e *usecase.ActionPlanEntry) actionPlanEntryResponse {
	return actionPlanEntryResponse{
		AnswerID:    e.AnswerID,
		RiskID:      e.RiskID,
		Description: e.Description,
		Status:      e.Status,
		Priority:    e.Priority,
		Score:       e.Score,
		RiskLevel:   toLevelResponse(e.Level),
		Measures:    toMeasureResponses(e.Measures),
	}
}

type riskSummaryResponse struct {
	Total    int            `json:"total"`
	Unscored int            `json:"unscored"`
	ByLabel  map[string]int `json:"by_label"`
}

type questionResponse struct {
	ID    types.QuestionID `json:"id"`
	Text  string           `json:"text"`
	Order int              `json:"order"`
}

type topicResponse struct {
	ID        types.TopicID      `json:"id"`
	Name      string             `json:"name"`
	Order     int                `json:"order"`
	Questions []questionResponse `json:"questions"`
}

type categoryResponse struct {
	ID     types.CategoryID `json:"id"`
	Name   string           `json:"name"`
	Order  int              `json:"order"`
	Topics []topicResponse  `json:"topics"`
}

type toolResponse struct {
	ID            types.ToolID       `json:"id"`
	Name          string             `json:"name"`
	Description   string             `json:"description"`
	QuestionCount int                `json:"question_count"`
	Categories    []categoryResponse `json:"categories"`
}

func toToolResponse(tool *model.Tool) toolResponse {
	categories := make([]categoryResponse, 0, len(tool.Categories))
	for _, cat := range tool.Categories {
		topics := make([]topicResponse, 0, len(cat.Topics))
		for _, topic := range cat.Topics {
			questions := make([]questionResponse, 0, len(topic.Questions))
			for _, q := range topic.Questions {
				questions = append(questions, questionResponse{
					ID:    q.ID,
					Text:  q.Text,
					Order: q.Order,
				})
			}
			topics = append(topics, topicResponse{
				ID:        topic.ID,
				Name:      topic.Name,
				Order:     topic.Order,
				Questions: questions,
			})
		}
		categories = append(categories, categoryResponse{
			ID:     cat.ID,
			Name:   cat.Name,
			Order:  cat.Order,
			Topics: topics,
		})
	}
	return toolResponse{
		ID:            tool.ID,
		Name:          tool.Name,
		Description:   tool.Description,
		QuestionCount: tool.QuestionCount(),
		Categories:    categories,
	}
}
