package utils

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/vastrastudio/vastra-backend/config"
	"github.com/vastrastudio/vastra-backend/models"
)

const (
	analysisModel  = "gemini-3-flash-preview"
	synthesisModel = "gemini-2.5-flash-image"
)

// Gemini talks to the generative models for portrait analysis and try-on
// synthesis. The zero value is ready to use; a client is created per call
// the same way the rest of the codebase treats external services.
type Gemini struct{}

func newGeminiClient(ctx context.Context) (*genai.Client, error) {
	if config.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.GeminiAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %v", err)
	}
	return client, nil
}

// AnalyzePortrait extracts fashion metadata from a portrait. photo may be
// an S3 object key, a URL, a data URI or a local path.
func (Gemini) AnalyzePortrait(ctx context.Context, photo string) (models.BodyAnalysis, error) {
	client, err := newGeminiClient(ctx)
	if err != nil {
		return models.BodyAnalysis{}, err
	}
	defer client.Close()

	imgData, mimeType, err := fetchImage(ctx, photo)
	if err != nil {
		return models.BodyAnalysis{}, fmt.Errorf("failed to fetch portrait: %v", err)
	}

	model := client.GenerativeModel(analysisModel)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"gender":           {Type: genai.TypeString, Enum: []string{"Male", "Female", "Unspecified"}},
			"skinTone":         {Type: genai.TypeString},
			"bodyShape":        {Type: genai.TypeString},
			"detectedFeatures": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"gender", "skinTone", "bodyShape", "detectedFeatures"},
	}

	prompt := "Analyze this professional portrait for fashion metadata. Return JSON with: " +
		"1. gender (Male/Female). 2. skinTone (descriptive). " +
		"3. bodyShape (Hourglass, Pear, Rectangle, Inverted Triangle, Apple, Athletic). " +
		"4. detectedFeatures (array of strings like 'broad shoulders', 'slender')."

	resp, err := model.GenerateContent(ctx,
		genai.ImageData(mimeSubtype(mimeType), imgData),
		genai.Text(prompt),
	)
	if err != nil {
		return models.BodyAnalysis{}, fmt.Errorf("failed to analyze portrait: %v", err)
	}

	raw, err := firstText(resp)
	if err != nil {
		return models.BodyAnalysis{}, err
	}
	var analysis models.BodyAnalysis
	if err := json.Unmarshal([]byte(raw), &analysis); err != nil {
		return models.BodyAnalysis{}, fmt.Errorf("failed to parse analysis response: %v", err)
	}
	if analysis.Gender == "" {
		analysis.Gender = models.GenderUnspecified
	}
	return analysis, nil
}

// angleDetails steers the synthesis perspective per camera angle.
var angleDetails = map[models.CameraAngle]string{
	models.AngleFront:   "Symmetrical frontal editorial pose.",
	models.AngleSide:    "Refined 90-degree profile fashion view.",
	models.AngleBack:    "Rear architectural perspective of the garment.",
	models.AngleCloseUp: "Macro focus on embroidery, fabric texture, and lighting highlights.",
	models.Angle360:     "A high-fashion quad-composite layout showing four different model angles.",
}

// GenerateTryOn renders the garments onto the subject's portrait and
// returns the raw composite image bytes.
func (Gemini) GenerateTryOn(ctx context.Context, portrait string, garments []string, angle models.CameraAngle, analysis *models.BodyAnalysis, colorPrompt string) ([]byte, error) {
	client, err := newGeminiClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	imgData, mimeType, err := fetchImage(ctx, portrait)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch portrait: %v", err)
	}

	bodyShape := "detected"
	if analysis != nil && analysis.BodyShape != "" {
		bodyShape = string(analysis.BodyShape)
	}
	aspectRatio := "3:4"
	if angle == models.Angle360 {
		aspectRatio = "16:9"
	}

	prompt := fmt.Sprintf(`HIGH-FIDELITY VIRTUAL TRY-ON INSTRUCTION:
MISSION: Photorealistically integrate the following premium ethnic attire onto the human subject in the provided photo: %s %s.

CORE CONSTRAINTS:
1. EXACT SKIN TONE: You MUST retain the subject's precise original skin tone, complexion, and subsurface scattering characteristics. Do not lighten, darken, or alter their natural ethnicity.
2. LIGHTING HARMONIZATION: Match the directional lighting, shadows, and color temperature of the source photo perfectly. The garment must appear to be lit by the same light sources as the person's face.
3. SEAMLESS BLENDING: Ensure soft, natural shadows where fabric meets skin (necklines, sleeves, hem).
4. SILHOUETTE CALIBRATION: Drape the fabric to naturally follow the subject's %s body shape and current pose.

STYLE: Professional fashion editorial. High identity retention. 8k resolution.
PERSPECTIVE: %s
ASPECT RATIO: %s`, colorPrompt, strings.Join(garments, " and "), bodyShape, angleDetails[angle], aspectRatio)

	model := client.GenerativeModel(synthesisModel)
	resp, err := model.GenerateContent(ctx,
		genai.ImageData(mimeSubtype(mimeType), imgData),
		genai.Text(prompt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate try-on: %v", err)
	}

	image, err := firstImage(resp)
	if err != nil {
		return nil, fmt.Errorf("drape refinement failed, ensure the portrait is well-lit and unobstructed")
	}
	return image, nil
}

// GenerateGarmentImage renders a studio catalog shot for a designer prompt.
func (Gemini) GenerateGarmentImage(ctx context.Context, prompt, colorPrompt string) ([]byte, error) {
	client, err := newGeminiClient(ctx)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	text := fmt.Sprintf("Commercial high-end fashion catalog photography. A premium %s %s on a minimalist neutral studio background. 8k resolution, sharp focus on luxury textile weave.", colorPrompt, prompt)

	model := client.GenerativeModel(synthesisModel)
	resp, err := model.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return nil, fmt.Errorf("failed to generate garment image: %v", err)
	}

	image, err := firstImage(resp)
	if err != nil {
		return nil, fmt.Errorf("the design studio restricted this prompt")
	}
	return image, nil
}

func firstText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no content generated")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			return string(text), nil
		}
	}
	return "", fmt.Errorf("unexpected response format (no text part)")
}

func firstImage(resp *genai.GenerateContentResponse) ([]byte, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, fmt.Errorf("no content generated")
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if blob, ok := part.(genai.Blob); ok {
			return blob.Data, nil
		}
	}
	return nil, fmt.Errorf("unexpected response format (no image part)")
}

// fetchImage resolves an image reference to raw bytes and a MIME type.
// Accepts data URIs, http(s) URLs, S3 object keys and local paths.
func fetchImage(ctx context.Context, ref string) ([]byte, string, error) {
	if strings.HasPrefix(ref, "data:") {
		return decodeDataURI(ref)
	}
	if !strings.HasPrefix(ref, "http") {
		if data, err := os.ReadFile(ref); err == nil {
			return data, "image/jpeg", nil
		}
		// Not a local file; treat it as a stored object key.
		url, err := GetPresignedURL(ctx, ref)
		if err != nil {
			return nil, "", err
		}
		ref = url
	}

	resp, err := http.Get(ref)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch image, status: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return data, mimeType, nil
}

func decodeDataURI(uri string) ([]byte, string, error) {
	rest := strings.TrimPrefix(uri, "data:")
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return nil, "", fmt.Errorf("malformed data URI")
	}
	mimeType := strings.TrimSuffix(meta, ";base64")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("malformed data URI payload: %v", err)
	}
	return data, mimeType, nil
}

func mimeSubtype(mimeType string) string {
	if _, sub, ok := strings.Cut(mimeType, "/"); ok {
		return sub
	}
	return "jpeg"
}
