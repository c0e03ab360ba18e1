package gemini

import (
	"context"
	"errors"
	"os"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// systemContext frames the free-text Q&A fallback. The assistant only ever
// reaches Gemini when the rule classifier produced no candidate, so the
// model answers questions, it never decides operations.
const systemContext = "Eres el asistente virtual de una plataforma de monitoreo acuícola. " +
	"Ayudas a los usuarios con preguntas generales sobre sus tanques, sensores y reportes. " +
	"Responde en español, de forma breve y clara. " +
	"No ejecutes operaciones; si el usuario quiere crear, editar o eliminar algo, " +
	"indícale que escriba la orden directamente."

type IGemini interface {
	Chat(ctx context.Context, userText string) (string, error)
}

type geminiClient struct {
	apiKey    string
	modelName string
	client    *genai.Client
}

func NewGeminiClient() (IGemini, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")

	modelName := os.Getenv("GEMINI_MODEL_NAME")
	if apiKey == "" {
		return nil, errors.New("gemini API key is required")
	}

	if modelName == "" {
		modelName = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}

	return &geminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		client:    client,
	}, nil
}

func (g *geminiClient) Chat(ctx context.Context, userText string) (string, error) {
	model := g.client.GenerativeModel(g.modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemContext)},
	}

	res, err := model.GenerateContent(ctx, genai.Text(userText))
	if err != nil {
		return "", err
	}

	if len(res.Candidates) == 0 || len(res.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("no response from Gemini API")
	}

	part := res.Candidates[0].Content.Parts[0]
	text, ok := part.(genai.Text)
	if !ok {
		return "", errors.New("unexpected response format from Gemini API")
	}

	return string(text), nil
}

func (g *geminiClient) Close() {
	if g.client != nil {
		g.client.Close()
	}
}
