package main

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/contact"
	"github.com/Zachkp/folio/internal/github"
	"github.com/Zachkp/folio/internal/site"
)

const (
	msgSent         = "Thank you! Your message has been sent successfully. I'll get back to you soon!"
	msgFix          = "Please fix the following issues:"
	msgFailed       = "Form submission failed."
	msgLooksGood    = "Message looks good!"
	msgUnexpected   = "Sorry, there was an error sending your message. Please try again later."
	htmxRequestFlag = "true"
)

// App holds the services the handlers depend on.
type App struct {
	Contact   *contact.Service
	GitHub    *github.Service
	Site      site.Config
	Resume    SiteConfig
	Templates string
	Logger    *zap.Logger
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == htmxRequestFlag
}

func newRouter(app *App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(app.Logger))
	r.LoadHTMLGlob(app.Templates)

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent": AboutMe,
			"projects":       Projects,
			"preload":        app.Site.Preload,
			"github":         app.GitHub != nil,
		})
	})

	// HTMX fragments
	r.GET("/contact-form", func(c *gin.Context) {
		c.HTML(http.StatusOK, "contact.html", gin.H{
			"title": "Contact Me",
		})
	})
	r.GET("/work-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "entries.html", gin.H{"entries": Work})
	})
	r.GET("/education-content", func(c *gin.Context) {
		c.HTML(http.StatusOK, "entries.html", gin.H{"entries": Education})
	})

	r.POST("/contact/validate", app.validateMessage)
	r.POST("/contact", app.submitContact)

	api := r.Group("/api")
	api.GET("/site-config", func(c *gin.Context) {
		c.JSON(http.StatusOK, app.Site)
	})
	if app.GitHub != nil {
		api.GET("/github", app.githubWidget)
	}

	r.GET("/resume", app.downloadResume)

	return r
}

// validateMessage gives live feedback while the visitor types.
func (app *App) validateMessage(c *gin.Context) {
	var in struct {
		Message string `form:"message" json:"message"`
	}
	if err := c.ShouldBind(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result := app.Contact.Check(in.Message)
	if !isHTMX(c) {
		c.JSON(http.StatusOK, result)
		return
	}

	// Nothing to say about an empty field
	if strings.TrimSpace(in.Message) == "" {
		c.String(http.StatusOK, "")
		return
	}
	c.HTML(http.StatusOK, "validation.html", gin.H{
		"valid":   result.Valid,
		"errors":  result.Errors,
		"success": msgLooksGood,
	})
}

func (app *App) submitContact(c *gin.Context) {
	var sub contact.Submission
	if err := c.ShouldBind(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	err := app.Contact.Submit(c.Request.Context(), sub)

	var (
		invalid  *contact.InvalidError
		delivery *contact.DeliveryError
	)
	switch {
	case err == nil:
		if isHTMX(c) {
			c.HTML(http.StatusOK, "contact-success.html", gin.H{"success": msgSent})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "sent", "message": msgSent})

	case errors.As(err, &invalid):
		if isHTMX(c) {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error":    msgFix,
				"problems": invalid.Problems(),
			})
			return
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"status": "invalid",
			"errors": invalid.Problems(),
			"fields": invalid.Fields,
		})

	case errors.As(err, &delivery):
		if isHTMX(c) {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{
				"error":  msgFailed,
				"mailto": delivery.Mailto,
			})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{
			"status": "failed",
			"error":  msgFailed,
			"mailto": delivery.Mailto,
		})

	default:
		app.Logger.Error("contact submission failed", zap.Error(err))
		if isHTMX(c) {
			c.HTML(http.StatusOK, "contact-error.html", gin.H{"error": msgUnexpected})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgUnexpected})
	}
}

func (app *App) githubWidget(c *gin.Context) {
	snap := app.GitHub.Snapshot(c.Request.Context())
	if isHTMX(c) {
		c.HTML(http.StatusOK, "github.html", gin.H{"snapshot": snap})
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (app *App) downloadResume(c *gin.Context) {
	info, err := os.Stat(app.Resume.ResumePath)
	if err != nil || info.IsDir() {
		app.Logger.Warn("resume not available", zap.String("path", app.Resume.ResumePath), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "resume not found"})
		return
	}

	name := app.Resume.ResumeName
	if name == "" {
		name = "resume.pdf"
	}
	c.FileAttachment(app.Resume.ResumePath, name)
}
