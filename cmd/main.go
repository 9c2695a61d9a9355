package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
	"github.com/xhad/zummary/internal/models"
	"github.com/xhad/zummary/internal/types"
	cfgPkg "github.com/xhad/zummary/pkg/config"
	"github.com/xhad/zummary/pkg/llm"
	"github.com/xhad/zummary/pkg/loader"
	"github.com/xhad/zummary/pkg/narration"
	"github.com/xhad/zummary/pkg/summarize"
)

type Config struct {
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float64
	MaxRetries  int
	RateLimit   float64
	Timeout     time.Duration
	Language    string

	YouTubeURL string
	ArticleURL string
	PDFPath    string
	TextPath   string
	Quiz       bool
	Narrate    bool
	AudioOut   string
}

func main() {
	config := parseFlags()

	if err := run(config); err != nil {
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

	flag.StringVar(&config.YouTubeURL, "youtube", "", "YouTube video URL to summarize")
	flag.StringVar(&config.ArticleURL, "url", "", "Web article URL to summarize")
	flag.StringVar(&config.PDFPath, "pdf", "", "PDF file to summarize")
	flag.StringVar(&config.TextPath, "file", "", "Plain text file to summarize")
	flag.BoolVar(&config.Quiz, "quiz", false, "Generate a practice quiz instead of a summary")
	flag.BoolVar(&config.Narrate, "narrate", false, "Generate narration audio for the summary")
	flag.StringVar(&config.AudioOut, "audio-out", "summary.mp3", "Path for generated narration audio")
	flag.Parse()

	config.Timeout = time.Duration(timeoutSeconds) * time.Second

	// Load config file if specified
	if cfg, err := cfgPkg.LoadConfig(configPath); err == nil {
		if config.BaseURL == "" {
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

	return config
}

func getSpinner(description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(-1,
		progressbar.OptionSetDescription(color.CyanString(description)),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetWidth(20),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config Config) error {
	ctx := context.Background()

	docs, err := loadDocuments(ctx, config)
	if err != nil {
		return err
	}

	color.Blue("Loaded %d document(s)", len(docs))

	llmClient, err := llm.NewWithConfig(llm.ClientConfig{
		Model:       config.Model,
		MaxTokens:   config.MaxTokens,
		BaseURL:     config.BaseURL,
		Temperature: config.Temperature,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize LLM client: %v", err)
	}

	if config.Quiz {
		spinner := getSpinner(" Generating practice quiz...")
		quiz, err := summarize.GenerateQuiz(ctx, docs, llmClient)
		spinner.Finish()
		if err != nil {
			return err
		}

		fmt.Println()
		color.Green("%s", quiz)
		return nil
	}

	spinner := getSpinner(" Summarizing...")
	summary, err := summarize.Summarize(ctx, docs, llmClient, config.MaxRetries)
	spinner.Finish()
	if err != nil {
		return err
	}

	if ok, reason := summarize.ValidateQuality(summary); !ok {
		color.Yellow("Quality warning: %s", reason)
	}

	fmt.Println()
	color.Green("%s", summary)

	if config.Narrate {
		audio, _, err := narration.GenerateAudio(summary, types.NarrationConfig{
			Language: config.Language,
			Slow:     false,
		})
		if err != nil {
			return fmt.Errorf("narration failed: %v", err)
		}

		if err := os.WriteFile(config.AudioOut, audio, 0644); err != nil {
			return fmt.Errorf("failed to write audio file: %v", err)
		}
		color.Blue("Narration audio written to %s", config.AudioOut)
	}

	return nil
}

func loadDocuments(ctx context.Context, config Config) ([]models.Document, error) {
	switch {
	case config.YouTubeURL != "":
		color.Blue("Fetching YouTube transcript: %s", config.YouTubeURL)
		yt := loader.NewYouTubeLoader(loader.YouTubeLoaderConfig{Timeout: config.Timeout})
		return yt.Load(ctx, config.YouTubeURL)

	case config.ArticleURL != "":
		color.Blue("Fetching article: %s", config.ArticleURL)
		web := loader.NewWebLoader(loader.WebLoaderConfig{
			RateLimit: config.RateLimit,
			Timeout:   config.Timeout,
			OnProgress: func(url string) {
				color.Blue("  %s", url)
			},
		})
		return web.Load(ctx, config.ArticleURL)

	case config.PDFPath != "":
		color.Blue("Extracting PDF: %s", config.PDFPath)
		return loader.LoadPDF(config.PDFPath)

	case config.TextPath != "":
		data, err := os.ReadFile(config.TextPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %v", config.TextPath, err)
		}
		return loader.FromText(string(data))

	default:
		return nil, fmt.Errorf("no source provided: use -youtube, -url, -pdf, or -file")
	}
}
