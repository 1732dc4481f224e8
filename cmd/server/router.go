package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/ncnews/news-api/internal/api"
	apiMiddleware "github.com/ncnews/news-api/internal/api/middleware"
	"github.com/ncnews/news-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Any method+path combination outside the declared
// table answers 404 { "msg": "Path not found" } — a routing-level miss,
// distinct from a domain-level "Article does not exist".
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	topicHandler := api.NewTopicHandler(app.topicStore, app.logger)
	articleHandler := api.NewArticleHandler(app.articleStore, app.logger)
	commentHandler := api.NewCommentHandler(app.commentStore, app.articleStore, app.logger)
	userHandler := api.NewUserHandler(app.userStore, app.logger)

	r.Get("/topics", topicHandler.GetTopics)
	r.Get("/articles", articleHandler.GetArticles)
	r.Get("/articles/{article_id}", articleHandler.GetArticleByID)
	r.Patch("/articles/{article_id}", articleHandler.UpdateArticleVotes)
	r.Get("/articles/{article_id}/comments", commentHandler.GetCommentsForArticle)
	r.Post("/articles/{article_id}/comments", commentHandler.CreateComment)
	r.Delete("/comments/{comment_id}", commentHandler.DeleteComment)
	r.Get("/users", userHandler.GetUsers)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	r.NotFound(pathNotFound)
	r.MethodNotAllowed(pathNotFound)

	return r
}

// pathNotFound is the catch-all for unmatched routes and methods.
func pathNotFound(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotFound, "Path not found")
}
