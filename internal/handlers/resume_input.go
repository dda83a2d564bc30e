package handlers

import (
	"fmt"
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"talentlens/resume-analyzer/internal/services"
)

// readResumeInput pulls the resume out of a multipart request: either an
// uploaded "resume" file or a pre-extracted "resume_text" form field.
func readResumeInput(c *fiber.Ctx, maxFileSize int64) (services.ResumeInput, error) {
	if text := strings.TrimSpace(c.FormValue("resume_text")); text != "" {
		return services.ResumeInput{Text: text}, nil
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		return services.ResumeInput{}, validationErr("resume file or resume_text is required")
	}

	if fileHeader.Size > maxFileSize {
		return services.ResumeInput{}, validationErr(
			fmt.Sprintf("resume file too large, max size is %d bytes", maxFileSize))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return services.ResumeInput{}, validationErr("failed to open uploaded resume")
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return services.ResumeInput{}, validationErr("failed to read uploaded resume")
	}

	return services.ResumeInput{
		Filename: fileHeader.Filename,
		Data:     data,
	}, nil
}
