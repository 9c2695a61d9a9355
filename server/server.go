package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/xhad/zummary/internal/models"
	"github.com/xhad/zummary/internal/types"
	cfgPkg "github.com/xhad/zummary/pkg/config"
	"github.com/xhad/zummary/pkg/llm"
	"github.com/xhad/zummary/pkg/loader"
	"github.com/xhad/zummary/pkg/narration"
	"github.com/xhad/zummary/pkg/summarize"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Be careful with this in production
	},
}

type Message struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type WSServer struct {
	config    Config
	llmClient *llm.Client
	webLoader *loader.WebLoader
	ytLoader  *loader.YouTubeLoader
}

type Config struct {
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	MaxRetries  int
	RateLimit   float64
	Timeout     time.Duration
	Language    string
}

func NewWSServer(config Config) (*WSServer, error) {
	llmClient, err := llm.NewWithConfig(llm.ClientConfig{
		Model:       config.Model,
		MaxTokens:   config.MaxTokens,
		BaseURL:     config.BaseURL,
		Temperature: config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM client: %v", err)
	}

	return &WSServer{
		config:    config,
		llmClient: llmClient,
		webLoader: loader.NewWebLoader(loader.WebLoaderConfig{
			RateLimit: config.RateLimit,
			Timeout:   config.Timeout,
		}),
		ytLoader: loader.NewYouTubeLoader(loader.YouTubeLoaderConfig{
			Timeout: config.Timeout,
		}),
	}, nil
}

func (s *WSServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			log.Printf("Error reading message: %v", err)
			break
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		s.handleMessage(conn, msg)
	}
}

func (s *WSServer) handleMessage(conn *websocket.Conn, msg Message) {
	ctx := context.Background()

	docs, err := s.loadSource(ctx, conn, msg.Content)
	if err != nil {
		s.sendMessage(conn, "error", err.Error())
		return
	}

	switch msg.Type {
	case "quiz":
		s.sendMessage(conn, "status", "Generating practice quiz...")
		quiz, err := summarize.GenerateQuiz(ctx, docs, s.llmClient)
		if err != nil {
			s.sendMessage(conn, "error", fmt.Sprintf("Quiz generation failed: %v", err))
			return
		}
		s.sendMessage(conn, "quiz", quiz)

	case "summarize", "narrate":
		s.sendMessage(conn, "status", "Generating summary...")
		summary, err := summarize.Summarize(ctx, docs, s.llmClient, s.config.MaxRetries)
		if err != nil {
			s.sendMessage(conn, "error", fmt.Sprintf("Summarization failed: %v", err))
			return
		}

		if ok, reason := summarize.ValidateQuality(summary); !ok {
			s.sendMessage(conn, "status", fmt.Sprintf("Quality warning: %s", reason))
		}
		s.sendMessage(conn, "summary", summary)

		if msg.Type == "narrate" {
			_, b64, err := narration.GenerateAudio(summary, types.NarrationConfig{
				Language: s.config.Language,
			})
			if err != nil {
				s.sendMessage(conn, "error", fmt.Sprintf("Narration failed: %v", err))
				return
			}
			s.sendMessage(conn, "audio", b64)
		}

	default:
		s.sendMessage(conn, "error", fmt.Sprintf("Unknown message type: %s", msg.Type))
	}
}

// loadSource routes the request content to the right adapter: YouTube
// URLs to the transcript loader, other URLs to the article loader, and
// anything else is treated as pasted text.
func (s *WSServer) loadSource(ctx context.Context, conn *websocket.Conn, content string) ([]models.Document, error) {
	urlRegex := regexp.MustCompile(`https?://[^\s]+`)
	url := urlRegex.FindString(content)
	if url == "" {
		return loader.FromText(content)
	}

	if ok, _ := loader.ValidateURL(url); ok {
		s.sendMessage(conn, "status", fmt.Sprintf("Fetching YouTube transcript: %s", url))
		return s.ytLoader.Load(ctx, url)
	}

	s.sendMessage(conn, "status", fmt.Sprintf("Fetching article: %s", url))
	return s.webLoader.Load(ctx, url)
}

func (s *WSServer) sendMessage(conn *websocket.Conn, msgType string, content string) {
	msg := Message{
		Type:    msgType,
		Content: content,
	}
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

func main() {
	config := parseFlags()

	server, err := NewWSServer(config)
	if err != nil {
		log.Fatal(err)
	}

	// Add WebSocket endpoint
	http.HandleFunc("/ws", server.handleWebSocket)

	// Add a simple health check endpoint
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting WebSocket server on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() Config {
	var config Config
	var configPath string
	var timeoutSeconds int

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&config.BaseURL, "ollama-url", os.Getenv("OLLAMA_BASE_URL"), "Ollama server URL")
	flag.StringVar(&config.Model, "model", "mistral", "LLM model to use")
	flag.IntVar(&config.MaxTokens, "max-tokens", 2000, "Maximum tokens for LLM response")
	flag.Float64Var(&config.Temperature, "temperature", 0.7, "Set the LLM Temperature")
	flag.IntVar(&config.MaxRetries, "max-retries", 3, "Retry budget for summarization")
	flag.Float64Var(&config.RateLimit, "rate-limit", 2.0, "Rate limit for article fetching")
	flag.IntVar(&timeoutSeconds, "timeout", 30, "Loader timeout in seconds")
	flag.StringVar(&config.Language, "language", "en", "Narration language")
	flag.Parse()

	config.Timeout = time.Duration(timeoutSeconds) * time.Second

	// Load config file if specified
	if cfg, err := cfgPkg.LoadConfig(configPath); err == nil {
		if flag.Lookup("ollama-url").Value.String() == "" {
			config.BaseURL = cfg.LLM.BaseURL
		}
		config.Model = cfg.LLM.Model
		config.MaxTokens = cfg.LLM.MaxTokens
		config.Temperature = cfg.LLM.Temperature
		config.MaxRetries = cfg.Summarizer.MaxRetries
		config.RateLimit = cfg.Loader.RateLimit
		config.Timeout = time.Duration(cfg.Loader.TimeoutSeconds) * time.Second
		config.Language = cfg.Narration.Language
	}

	if !strings.HasPrefix(config.BaseURL, "http") {
		config.BaseURL = "http://localhost:11434"
	}

	return config
}
