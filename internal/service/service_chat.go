// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/agent-chat/internal/config"
	"github.com/MKhiriev/agent-chat/internal/logger"
)

// analysisKeywords start the README analysis. They are matched as
// substrings, before status and help.
var analysisKeywords = []string{"analyze", "readme", "start", "run"}

const helpReply = "🤖 **README Analyzer Commands**\n\n" +
	"**Main Commands:**\n" +
	"- `analyze readme` - Start full README analysis\n" +
	"- `status` - Check system status\n" +
	"- `help` - Show this help\n\n" +
	"**What I do:**\n" +
	"1. 📥 Clone compose-for-agents repository\n" +
	"2. 🔍 Find all README files\n" +
	"3. 🧠 Analyze each with AI\n" +
	"4. 📊 Create comparative report\n" +
	"5. 📤 Upload to Box\n\n" +
	"Just say \"analyze readme\" to get started!"

const analysisReply = "🔄 **Analysis requested**\n\n" +
	"The README analysis pipeline is not attached to this agent, " +
	"so no repository was cloned and nothing was uploaded.\n\n" +
	"Run the full agent stack to get a real report."

type chatService struct {
	serviceName string
	appVersion  string

	logger *logger.Logger
}

// NewChatService returns the keyword responder of the demo agent.
func NewChatService(cfg config.App, logger *logger.Logger) ChatService {
	return &chatService{
		serviceName: cfg.ServiceName,
		appVersion:  cfg.Version,
		logger:      logger,
	}
}

func (s *chatService) Reply(ctx context.Context, message string) (string, error) {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, analysisKeywords):
		return analysisReply, nil
	case strings.Contains(lower, "status"):
		return s.statusReply(), nil
	case strings.Contains(lower, "help"):
		return helpReply, nil
	default:
		return fmt.Sprintf("You said: %s\n\nI only understand a few commands. Type `help` to see them.", strings.TrimSpace(message)), nil
	}
}

func (s *chatService) statusReply() string {
	return "🟢 **System Status: Online**\n\n" +
		fmt.Sprintf("- ✅ %s: v%s\n", s.serviceName, s.appVersion) +
		"- ⚠️ Analysis pipeline: Not attached\n\n" +
		"Ready to chat!"
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
