package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	keyFlag     = "openai-api-key"
	urlFlag     = "openai-api-url"
	modelFlag   = "openai-model"
	timeoutFlag = "openai-timeout"
)

const DefaultModel = "gpt-4o-mini"

func RegisterFlags(f []cli.Flag) []cli.Flag {
	return append(f,
		cli.StringFlag{
			Name:   keyFlag,
			Usage:  "openai api key",
			Value:  "",
			EnvVar: "OPENAI_API_KEY",
		},
		cli.StringFlag{
			Name:   urlFlag,
			Usage:  "openai api base url",
			Value:  "https://api.openai.com/v1",
			EnvVar: "OPENAI_API_URL",
		},
		cli.StringFlag{
			Name:   modelFlag,
			Usage:  "default openai model",
			Value:  DefaultModel,
			EnvVar: "OPENAI_MODEL",
		},
		cli.DurationFlag{
			Name:   timeoutFlag,
			Usage:  "openai request timeout",
			Value:  30 * time.Second,
			EnvVar: "OPENAI_TIMEOUT",
		},
	)
}

type ImageURL struct {
	URL string `json:"url"`
}

type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// Message content is either a plain string or a list of content parts.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type ChoiceMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

type Api struct {
	url            string
	cl             *http.Client
	model          string
	timeout        time.Duration
	prepareRequest func(r *http.Request) (*http.Request, error)
}

func New(c *cli.Context, cl *http.Client) *Api {
	key := strings.TrimSpace(c.String(keyFlag))
	if key == "" {
		return nil
	}
	api := NewApi(cl, c.String(urlFlag), key, c.String(modelFlag), c.Duration(timeoutFlag))
	log.Infof("openai api endpoint %v default model %v", api.url, api.model)
	return api
}

func NewApi(cl *http.Client, u string, key string, model string, timeout time.Duration) *Api {
	model = strings.TrimSpace(model)
	if model == "" {
		model = DefaultModel
	}
	prepareRequest := func(r *http.Request) (*http.Request, error) {
		r.Header.Set("Authorization", "Bearer "+key)
		r.Header.Set("Content-Type", "application/json")
		r.Header.Set("Accept", "application/json")
		return r, nil
	}
	return &Api{
		url:            strings.TrimSuffix(u, "/"),
		cl:             cl,
		model:          model,
		timeout:        timeout,
		prepareRequest: prepareRequest,
	}
}

// Model returns the model used when a request does not name one.
func (api *Api) Model() string {
	return api.model
}

func (api *Api) CreateChatCompletion(ctx context.Context, cr *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	if cr.Model == "" {
		cr.Model = api.model
	}
	if api.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, api.timeout)
		defer cancel()
	}

	body, err := json.Marshal(cr)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	reqURL := fmt.Sprintf("%s/chat/completions", api.url)

	req, err := http.NewRequestWithContext(ctx, "POST", reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	req, err = api.prepareRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "prepare request")
	}

	resp, err := api.cl.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "request failed")
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode != http.StatusOK {
		var er errorResponse
		if json.Unmarshal(data, &er) == nil && er.Error.Message != "" {
			return nil, errors.Errorf("unexpected status code: %d: %v", resp.StatusCode, er.Error.Message)
		}
		return nil, errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result ChatCompletionResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, errors.Wrap(err, "decode response")
	}
	if len(result.Choices) == 0 {
		return nil, errors.New("no choices in response")
	}

	return &result, nil
}
