package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gauntlet-service/internal/models"
)

// Judge0 language ids for the languages the question bank uses.
var languageIDs = map[string]int{
	"javascript": 63,
	"python":     71,
	"java":       62,
	"c":          50,
	"cpp":        54,
	"go":         60,
}

const acceptedStatusID = 3

// Client runs code through the Judge0 REST API, one submission per test case.
type Client struct {
	apiKey  string
	apiHost string
	client  *http.Client
}

func NewClient(apiKey, apiHost string) *Client {
	return &Client{
		apiKey:  apiKey,
		apiHost: apiHost,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type submissionRequest struct {
	SourceCode     string `json:"source_code"`
	LanguageID     int    `json:"language_id"`
	Stdin          string `json:"stdin"`
	ExpectedOutput string `json:"expected_output"`
}

type submissionResponse struct {
	Status struct {
		ID          int    `json:"id"`
		Description string `json:"description"`
	} `json:"status"`
	Stdout        string `json:"stdout"`
	Stderr        string `json:"stderr"`
	CompileOutput string `json:"compile_output"`
}

// Run executes the source against every test case and reports how many passed.
// Any backend failure is returned as an error; callers decide how a failed run
// grades the answer.
func (c *Client) Run(ctx context.Context, source, language string, cases []models.TestCase) (*Verdict, error) {
	languageID, ok := languageIDs[strings.ToLower(strings.TrimSpace(language))]
	if !ok {
		return nil, fmt.Errorf("unsupported language %q", language)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("question has no test cases")
	}

	verdict := &Verdict{Total: len(cases)}
	firstFailure := ""

	for i, tc := range cases {
		resp, err := c.submit(ctx, submissionRequest{
			SourceCode:     source,
			LanguageID:     languageID,
			Stdin:          tc.Input,
			ExpectedOutput: tc.ExpectedOutput,
		})
		if err != nil {
			return nil, fmt.Errorf("judge0 submission %d: %w", i+1, err)
		}

		if resp.Status.ID == acceptedStatusID {
			verdict.Passed++
			verdict.CaseNotes = append(verdict.CaseNotes, fmt.Sprintf("case %d: passed", i+1))
			continue
		}

		detail := resp.Status.Description
		if resp.CompileOutput != "" {
			detail = strings.TrimSpace(resp.CompileOutput)
		} else if resp.Stderr != "" {
			detail = strings.TrimSpace(resp.Stderr)
		}
		verdict.CaseNotes = append(verdict.CaseNotes, fmt.Sprintf("case %d: %s", i+1, detail))
		if firstFailure == "" {
			firstFailure = fmt.Sprintf("case %d: %s", i+1, detail)
		}
	}

	verdict.AllPassed = verdict.Passed == verdict.Total
	verdict.Feedback = summarize(verdict.Passed, verdict.Total, firstFailure)
	return verdict, nil
}

func (c *Client) submit(ctx context.Context, sub submissionRequest) (*submissionResponse, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("https://%s/submissions?base64_encoded=false&wait=true", c.apiHost)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.apiKey)
	req.Header.Set("X-RapidAPI-Host", c.apiHost)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("judge0 returned %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var result submissionResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode judge0 response: %w", err)
	}
	return &result, nil
}
