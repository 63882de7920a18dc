package Controllers

import (
	"bufio"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"

	"Gaadi/middleware"

	"github.com/gofiber/fiber/v2"
)

const requestLogPath = "logs/requests.log"

func readRequestLog() ([]middleware.LogData, error) {
	file, err := os.Open(requestLogPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	var entries []middleware.LogData
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry middleware.LogData
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, scanner.Err()
}

// GetLogs returns request log entries, newest first. Supports ?limit=
// and ?path= (substring match).
func GetLogs(c *fiber.Ctx) error {
	entries, err := readRequestLog()
	if err != nil {
		log.Println(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read logs",
		})
	}

	if pathQuery := c.Query("path"); pathQuery != "" {
		filtered := entries[:0]
		for _, e := range entries {
			if strings.Contains(e.Path, pathQuery) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	// Newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	limit := 100
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 {
		limit = l
	}
	if len(entries) > limit {
		entries = entries[:limit]
	}

	return c.JSON(fiber.Map{
		"logs":  entries,
		"count": len(entries),
	})
}
