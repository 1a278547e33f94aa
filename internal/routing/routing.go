package routing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"

	"worldinsight/internal/config"
	"worldinsight/pkg/claims"
	"worldinsight/pkg/document"
	"worldinsight/pkg/handlers"
	"worldinsight/pkg/middleware"
	"worldinsight/pkg/session"
)

const (
	collBlogs     = "blogs"
	collComments  = "comments"
	collWishlists = "wishlists"

	muxVarEmail = "email"
	muxVarName  = "name"

	shutdownTimeout = 15 * time.Second
)

func InitRoutes(r *mux.Router, db *mongo.Database, sessions *session.Manager, storeTimeout time.Duration, logger *slog.Logger) {

	authHandler := handlers.NewAuthHandler(sessions, logger)
	blogHandler := newDocumentHandler(db, collBlogs, storeTimeout, logger)
	commentHandler := newDocumentHandler(db, collComments, storeTimeout, logger)
	wishlistHandler := newDocumentHandler(db, collWishlists, storeTimeout, logger)

	required := middleware.CheckJWT(sessions, logger, middleware.Required)
	optional := middleware.CheckJWT(sessions, logger, middleware.Optional)
	ownsEmail := middleware.RequireOwner(claims.FieldEmail, muxVarEmail, logger)
	ownsName := middleware.RequireOwner(claims.FieldName, muxVarName, logger)

	/* -+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+ */

	/* auth routers */
	r.HandleFunc("/", authHandler.Index).Methods("GET")
	r.HandleFunc("/jwt", authHandler.Login).Methods("POST").Name("login")
	r.HandleFunc("/logout", authHandler.Logout).Methods("GET").Name("logout")

	/* blog routers */
	r.Handle("/allBlogs", gated(blogHandler.GetAll, optional)).Methods("GET")
	r.Handle("/allBlogs/{id}", gated(blogHandler.GetByID, optional)).Methods("GET")
	r.Handle("/all_Blogs/{email}", gated(blogHandler.GetByField("email", muxVarEmail), required, ownsEmail)).Methods("GET")
	r.Handle("/allBlog/{name}", gated(blogHandler.GetByField("name", muxVarName), required, ownsName)).Methods("GET")
	r.HandleFunc("/addBlog", blogHandler.Create).Methods("POST")
	r.Handle("/update/{id}", gated(blogHandler.Update, required)).Methods("PUT")

	/* wishlist routers */
	r.Handle("/allWishlists", gated(wishlistHandler.GetAll, optional)).Methods("GET")
	r.Handle("/allWishlists/{email}", gated(wishlistHandler.GetByField("userMail", muxVarEmail), optional)).Methods("GET")
	r.Handle("/allWishlist/{name}", gated(wishlistHandler.GetByField("userName", muxVarName), optional)).Methods("GET")
	r.HandleFunc("/addWishlist", wishlistHandler.Create).Methods("POST")
	r.HandleFunc("/deleteWishlist/{id}", wishlistHandler.Delete).Methods("DELETE")

	/* comment routers */
	r.HandleFunc("/addComment", commentHandler.Create).Methods("POST")
	r.Handle("/getComments", gated(commentHandler.GetAll, optional)).Methods("GET")
}

// NewHandler wires the router with the request-scoped middleware and CORS.
func NewHandler(db *mongo.Database, cfg *config.Config, logger *slog.Logger) http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.Correlation, middleware.Logging(logger), middleware.Panic(logger))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		if _, err := w.Write([]byte(`{"message":"not found"}`)); err != nil {
			logger.Error("failed to write fallback JSON", slog.String("path", r.URL.Path), slog.Any("error", err))
		}
	})

	sessions := session.NewManager(cfg.AccessToken, cfg.Production)
	InitRoutes(r, db, sessions, cfg.StoreTimeout, logger)

	return middleware.CORS(cfg.CORSOrigins)(r)
}

// StartServer serves until ctx is cancelled, then drains in-flight requests.
func StartServer(ctx context.Context, h http.Handler, port string, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Println("\n\033[32m", "The server is running on http://localhost:"+port, "\033[0m")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func newDocumentHandler(db *mongo.Database, collection string, timeout time.Duration, logger *slog.Logger) *handlers.DocumentHandler {
	service := document.NewService(document.NewMongoRepo(db, collection), timeout)
	return handlers.NewDocumentHandler(service, logger, collection)
}

func gated(h http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) http.Handler {
	return middleware.Chain(h, middlewares...)
}
