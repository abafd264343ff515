package main

import (
	"log"
	"net/http"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/github"
	"github.com/Zachkp/folio/internal/site"
	"github.com/Zachkp/folio/internal/textgate"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	logger, err := newLogger(cfg.LogLevel, cfg.GinMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	contactSvc, err := contact.NewService(
		newRelay(cfg.Contact, logger),
		textgate.New(textgate.DefaultConfig()),
		contact.Options{
			Owner:      cfg.Contact.ToEmail,
			RetryDelay: cfg.Contact.RetryDelay,
			Timeout:    cfg.Contact.Timeout,
		},
		logger.Named("contact"),
	)
	if err != nil {
		logger.Fatal("create contact service", zap.Error(err))
	}

	var githubSvc *github.Service
	if cfg.GitHub.Username != "" {
		client := github.NewClient(cfg.GitHub.APIURL, cfg.GitHub.Username, cfg.GitHub.Token,
			&http.Client{Timeout: cfg.GitHub.Timeout})
		githubSvc = github.NewService(client, cfg.GitHub.CacheTTL, logger.Named("github"))
	}

	app := &App{
		Contact:   contactSvc,
		GitHub:    githubSvc,
		Site:      site.Default(),
		Resume:    cfg.Site,
		Templates: "templates/*",
		Logger:    logger,
	}

	r := newRouter(app)

	logger.Info("listening", zap.String("port", cfg.Port), zap.String("mode", gin.Mode()))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

// newRelay picks the first configured delivery channel: a hosted form
// endpoint, Postmark, then SMTP. With none configured submissions fall back
// to mailto.
func newRelay(cfg ContactConfig, logger *zap.Logger) contact.Relay {
	if cfg.FormRelayURL != "" {
		logger.Info("contact relay: form endpoint")
		return contact.NewFormRelay(cfg.FormRelayURL, &http.Client{Timeout: cfg.Timeout})
	}

	if cfg.PostmarkToken != "" {
		relay, err := contact.NewPostmarkRelay(contact.PostmarkConfig{
			ServerToken: cfg.PostmarkToken,
			From:        cfg.PostmarkFrom,
			To:          cfg.ToEmail,
		})
		if err == nil {
			logger.Info("contact relay: postmark")
			return relay
		}
		logger.Warn("postmark relay disabled", zap.Error(err))
	}

	relay, err := contact.NewSMTPRelay(contact.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPass,
		To:       cfg.ToEmail,
	})
	if err != nil {
		logger.Warn("no contact relay configured, submissions will fall back to mailto", zap.Error(err))
		return nil
	}
	logger.Info("contact relay: smtp")
	return relay
}
