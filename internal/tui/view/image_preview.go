package view

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os/exec"
	"time"
)

const inlineImagePreviewRows = 18

// RenderInlineImagePreview downloads the artwork and renders it as a block
// of terminal symbols via chafa.
func RenderInlineImagePreview(imageURL string, width int) (string, error) {
	if width < 30 {
		width = 40
	}

	chafaPath, err := exec.LookPath("chafa")
	if err != nil {
		return "", fmt.Errorf("chafa is not installed")
	}

	client := &http.Client{Timeout: 8 * time.Second}
	resp, err := client.Get(imageURL)
	if err != nil {
		return "", fmt.Errorf("download artwork: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download artwork: status %d", resp.StatusCode)
	}

	imageData, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return "", fmt.Errorf("read artwork: %w", err)
	}

	cmd := exec.Command(chafaPath,
		"--size", fmt.Sprintf("%dx%d", width, inlineImagePreviewRows),
		"--align", "top,center",
		"--format", "symbols",
		"-",
	)
	cmd.Stdin = bytes.NewReader(imageData)
	output, err := cmd.CombinedOutput()
	trimmed := string(bytes.TrimSpace(output))
	if err != nil {
		return "", fmt.Errorf("render artwork via chafa: %w: %s", err, trimmed)
	}
	if trimmed == "" {
		return "", fmt.Errorf("empty output")
	}
	return trimmed, nil
}
