package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/alnajat-edu/portal-api/internal/models"
	"github.com/alnajat-edu/portal-api/internal/store"
	"github.com/alnajat-edu/portal-api/pkg/config"
	"github.com/alnajat-edu/portal-api/pkg/export"
)

// Slide-deck sentinels the assistant is instructed to emit. The parser
// below turns them back into a structured deck.
const (
	deckStart   = "[[PPT_START]]"
	deckEnd     = "[[PPT_END]]"
	slidePrefix = "## "
)

const (
	fallbackEmptyReply  = "لم أحصل على رد، حاول مجدداً."
	fallbackServiceDown = "خطأ: فشل الاتصال بمزود الخدمة"
)

// ChatTurn is one prior exchange of the conversation.
type ChatTurn struct {
	Role    string `json:"role"` // "user" or "ai"
	Content string `json:"content"`
}

// AssistantService fronts the LLM completion boundary. Requests are
// single-shot with no retry or cancellation: a failed call degrades to an
// apology string and the user re-triggers manually.
type AssistantService struct {
	store  *store.Store
	cfg    config.AssistantConfig
	client *http.Client
	logger *zap.Logger
}

// NewAssistantService constructs the assistant service.
func NewAssistantService(st *store.Store, cfg config.AssistantConfig, client *http.Client, logger *zap.Logger) *AssistantService {
	if client == nil {
		client = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssistantService{store: st, cfg: cfg, client: client, logger: logger}
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	Temperature        float64             `json:"temperature,omitempty"`
	TopP               float64             `json:"topP,omitempty"`
	ResponseModalities []string            `json:"responseModalities,omitempty"`
	SpeechConfig       *geminiSpeechConfig `json:"speechConfig,omitempty"`
}

type geminiSpeechConfig struct {
	VoiceConfig struct {
		PrebuiltVoiceConfig struct {
			VoiceName string `json:"voiceName"`
		} `json:"prebuiltVoiceConfig"`
	} `json:"voiceConfig"`
}

type geminiRequest struct {
	Contents          []geminiContent         `json:"contents"`
	SystemInstruction *geminiContent          `json:"system_instruction,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Chat answers a message in the acting user's context. It never returns
// an error: remote failures come back as a user-visible Arabic fallback.
func (s *AssistantService) Chat(ctx context.Context, user models.User, message string, history []ChatTurn) string {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == "ai" {
			role = "model"
		}
		contents = append(contents, geminiContent{Role: role, Parts: []geminiPart{{Text: turn.Content}}})
	}
	contents = append(contents, geminiContent{Role: "user", Parts: []geminiPart{{Text: message}}})

	model := s.cfg.TeacherModel
	if user.Role == models.RoleAdmin {
		model = s.cfg.AdminModel
	}

	reply, err := s.generate(ctx, model, geminiRequest{
		Contents:          contents,
		SystemInstruction: &geminiContent{Parts: []geminiPart{{Text: s.systemInstruction(user)}}},
		GenerationConfig:  &geminiGenerationConfig{Temperature: 0.7, TopP: 0.9},
	})
	if err != nil {
		s.logger.Warn("assistant call failed", zap.Error(err))
		return fallbackServiceDown
	}
	if reply == "" {
		return fallbackEmptyReply
	}
	return reply
}

// Speech synthesizes the text, returning base64 PCM audio. A failed call
// yields an empty string and no error; the caller simply plays nothing.
func (s *AssistantService) Speech(ctx context.Context, text string) string {
	cleaned := strings.NewReplacer(deckStart, "", deckEnd, "", "##", "").Replace(text)

	req := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: "تحدث باللغة العربية: " + cleaned}}}},
		GenerationConfig: &geminiGenerationConfig{
			ResponseModalities: []string{"AUDIO"},
			SpeechConfig:       &geminiSpeechConfig{},
		},
	}
	req.GenerationConfig.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName = s.cfg.SpeechVoice

	audio, err := s.generateInline(ctx, s.cfg.SpeechModel, req)
	if err != nil {
		s.logger.Warn("speech call failed", zap.Error(err))
		return ""
	}
	return audio
}

// systemInstruction builds the Arabic persona prompt. Admins get a
// management-consultant persona fed with live school statistics; everyone
// else gets the lesson-preparation assistant.
func (s *AssistantService) systemInstruction(user models.User) string {
	var role string
	if user.Role == models.RoleAdmin {
		stats := s.schoolStats()
		role = fmt.Sprintf(`أنت الآن تعمل كـ 'خبير إدارة مدرسية' ومستشار لمدير مدرسة النجاة.
بيانات المدرسة الحالية:
- الطلاب: %d
- المعلمون: %d
- نسبة الحضور: %.0f%%
حلل البيانات بذكاء وقدم مشورات إدارية وصياغة تعاميم رسمية احترافية بلهجة وقورة وحازمة.`,
			stats.TotalStudents, stats.TotalTeachers, stats.AttendanceRate)
	} else {
		role = fmt.Sprintf(`أنت مساعد تربوي ذكي للمعلم (%s) في مدرسة النجاة.
ساعده في تحضير الدروس، ابتكار طرق تدريس، وإنشاء محتوى عروض بوربوينت (PPT) بأسلوب مشوق جداً.`, user.Name)
	}

	return fmt.Sprintf(`اسمك: 'مساعد بوابة النجاة الذكي'.
المدرسة: مدرسة النجاة الأهلية.
المستخدم: %s.
%s
قواعد هامة جداً لنتائج أسطورية:
- عند طلب عرض تقديمي أو بوربوينت، ابدأ دائماً بـ %s وانتهِ بـ %s.
- الشريحة الأولى يجب أن تكون للعنوان الرئيسي فقط.
- استخدم %s لعناوين الشرائح (مثال: ## أهمية التعليم التقني).
- لغتك العربية فصيحة، ملهمة، ومحترمة جداً.
- اجعل المحتوى منسقاً على شكل نقاط واضحة.`, user.Name, role, deckStart, deckEnd, strings.TrimSpace(slidePrefix))
}

type schoolStats struct {
	TotalStudents  int
	TotalTeachers  int
	AttendanceRate float64
}

func (s *AssistantService) schoolStats() schoolStats {
	records := s.store.Attendance()
	stats := schoolStats{
		TotalStudents: len(s.store.Students()),
		TotalTeachers: len(s.store.Teachers()),
	}
	if len(records) > 0 {
		present := 0
		for _, r := range records {
			if r.Status == models.AttendancePresent {
				present++
			}
		}
		stats.AttendanceRate = float64(present) / float64(len(records)) * 100
	}
	return stats
}

func (s *AssistantService) generate(ctx context.Context, model string, payload geminiRequest) (string, error) {
	resp, err := s.call(ctx, model, payload)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

func (s *AssistantService) generateInline(ctx context.Context, model string, payload geminiRequest) (string, error) {
	resp, err := s.call(ctx, model, payload)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	part := resp.Candidates[0].Content.Parts[0]
	if part.InlineData == nil {
		return "", nil
	}
	return part.InlineData.Data, nil
}

func (s *AssistantService) call(ctx context.Context, model string, payload geminiRequest) (*geminiResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", strings.TrimRight(s.cfg.BaseURL, "/"), model, s.cfg.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call completion service: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("completion service status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &parsed, nil
}

// ParseSlideDeck extracts a slide deck from an assistant reply. The deck
// is delimited by the start/end sentinels; the first header line is the
// deck title and every later header starts a new slide. Returns false
// when the reply carries no deck.
func ParseSlideDeck(text string) (export.SlideDeck, bool) {
	start := strings.Index(text, deckStart)
	end := strings.Index(text, deckEnd)
	if start == -1 || end == -1 || end < start {
		return export.SlideDeck{}, false
	}

	body := text[start+len(deckStart) : end]
	deck := export.SlideDeck{}
	var current *export.Slide

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, slidePrefix) {
			title := strings.TrimSpace(strings.TrimPrefix(line, slidePrefix))
			if deck.Title == "" && current == nil {
				deck.Title = title
				continue
			}
			deck.Slides = append(deck.Slides, export.Slide{Title: title})
			current = &deck.Slides[len(deck.Slides)-1]
			continue
		}
		bullet := strings.TrimLeft(line, "-•* ")
		if current != nil {
			current.Bullets = append(current.Bullets, bullet)
		} else if deck.Title == "" {
			deck.Title = bullet
		}
	}

	if deck.Title == "" && len(deck.Slides) == 0 {
		return export.SlideDeck{}, false
	}
	return deck, true
}
