package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

type ModelInfo struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ContextLength int    `json:"context_length"`
}

// Models lists the models the backend serves, sorted by id.
func (o *OpenAICompatible) Models(ctx context.Context) ([]ModelInfo, error) {
	resp, err := o.doRequest(ctx, http.MethodGet, "/v1/models", nil, o.headers())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := readBody(resp)
	if err != nil {
		return nil, err
	}

	var result struct {
		Data []ModelInfo `json:"data"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	for i := range result.Data {
		if result.Data[i].Name == "" {
			result.Data[i].Name = result.Data[i].ID
		}
	}
	sort.Slice(result.Data, func(i, j int) bool {
		return result.Data[i].ID < result.Data[j].ID
	})
	return result.Data, nil
}
