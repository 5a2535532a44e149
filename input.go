package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

var ErrBadStatus = errors.New("aoc: bad status")

// Inputs reads puzzle inputs from a cache directory, fetching and caching
// any that are missing.
type Inputs struct {
	Dir         string // cache; files are <Dir>/<year>/<day>.input
	BaseURL     string
	SessionFile string
	Client      *http.Client // http.DefaultClient if nil
	Log         *zap.Logger
}

// NewInputs returns an Inputs configured from cfg.
func NewInputs(cfg Config, log *zap.Logger) *Inputs {
	return &Inputs{
		Dir:         cfg.InputDir,
		BaseURL:     cfg.BaseURL,
		SessionFile: cfg.SessionFile,
		Log:         log,
	}
}

func (in *Inputs) Path(year, day int) string {
	return filepath.Join(in.Dir, strconv.Itoa(year), fmt.Sprintf("%d.input", day))
}

// Get returns the input for the given day.
func (in *Inputs) Get(ctx context.Context, year, day int) ([]byte, error) {
	filename := in.Path(year, day)
	if f, err := os.ReadFile(filename); err == nil {
		return f, nil
	}
	body, err := in.fetch(ctx, year, day)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0700); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filename, body, 0644); err != nil {
		return nil, err
	}
	return body, nil
}

func (in *Inputs) session() (string, error) {
	b, err := os.ReadFile(in.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session cookie: %w", err)
	}
	return strings.TrimSpace(string(b)), nil
}

func (in *Inputs) fetch(ctx context.Context, year, day int) ([]byte, error) {
	session, err := in.session()
	if err != nil {
		return nil, err
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(in.BaseURL, "/"), year, day)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: session})

	if in.Log != nil {
		in.Log.Info("fetching input", zap.String("url", url))
	}
	client := in.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %w: %v", url, ErrBadStatus, res.Status)
	}
	return io.ReadAll(res.Body)
}
