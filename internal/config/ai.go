package config

import (
	"os"
	"strings"
	"sync"
)

// AIConfig holds settings for the external LLM used for narrative report
// generation. Multiple API keys may be configured; on request failure the
// caller rotates to the next key before retrying.
type AIConfig struct {
	BaseURL   string   `json:"baseUrl"`
	Model     string   `json:"model"`
	APIKeys   []string `json:"-"` // never serialize
	TimeoutMS int      `json:"timeoutMs"`

	mu       sync.Mutex
	keyIndex int
}

// DefaultAIConfig returns the AI configuration from the environment.
// OPENROUTER_API_KEYS takes a comma-separated list; OPENROUTER_API_KEY a
// single key. No keys means the template report is used instead.
func DefaultAIConfig() *AIConfig {
	var keys []string
	if raw := os.Getenv("OPENROUTER_API_KEYS"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	} else if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		keys = append(keys, k)
	}

	return &AIConfig{
		BaseURL:   getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		Model:     getEnv("OPENROUTER_MODEL", "deepseek/deepseek-chat-v3-0324:free"),
		APIKeys:   keys,
		TimeoutMS: 30000,
	}
}

// IsEnabled returns true if at least one API key is configured.
func (c *AIConfig) IsEnabled() bool {
	return len(c.APIKeys) > 0
}

// CurrentKey returns the active API key, stripped of any "Bearer " prefix a
// deployer may have pasted in.
func (c *AIConfig) CurrentKey() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.APIKeys) == 0 {
		return ""
	}
	return strings.TrimPrefix(c.APIKeys[c.keyIndex], "Bearer ")
}

// RotateKey advances to the next configured API key and returns it.
func (c *AIConfig) RotateKey() string {
	c.mu.Lock()
	if len(c.APIKeys) == 0 {
		c.mu.Unlock()
		return ""
	}
	c.keyIndex = (c.keyIndex + 1) % len(c.APIKeys)
	key := strings.TrimPrefix(c.APIKeys[c.keyIndex], "Bearer ")
	c.mu.Unlock()
	return key
}

// ChatEndpoint returns the chat completions endpoint.
func (c *AIConfig) ChatEndpoint() string {
	return strings.TrimSuffix(c.BaseURL, "/") + "/chat/completions"
}
