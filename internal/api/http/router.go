package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"vecitools-backend/internal/service"
)

// Handlers bundles every HTTP handler behind the router.
type Handlers struct {
	Auth          *AuthHandler
	Users         *UserHandler
	Tools         *ToolHandler
	Loans         *LoanHandler
	Reviews       *ReviewHandler
	Messages      *MessageHandler
	Notifications *NotificationHandler
	Favorites     *FavoriteHandler
}

func NewHandlers(
	authSvc service.AuthService,
	userSvc service.UserService,
	toolSvc service.ToolService,
	loanSvc service.LoanService,
	reviewSvc service.ReviewService,
	msgSvc service.MessageService,
	noteSvc service.NotificationService,
	favSvc service.FavoriteService,
) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(authSvc),
		Users:         NewUserHandler(userSvc),
		Tools:         NewToolHandler(toolSvc),
		Loans:         NewLoanHandler(loanSvc),
		Reviews:       NewReviewHandler(reviewSvc),
		Messages:      NewMessageHandler(msgSvc),
		Notifications: NewNotificationHandler(noteSvc),
		Favorites:     NewFavoriteHandler(favSvc),
	}
}

// NewRouter wires all routes. Everything except auth and the liveness probe
// sits behind the token middleware.
func NewRouter(h *Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")

	r.HandleFunc("/auth/signup", h.Auth.Signup).Methods("POST")
	r.HandleFunc("/auth/login", h.Auth.Login).Methods("POST")
	r.HandleFunc("/auth/refresh", h.Auth.Refresh).Methods("POST")

	p := r.NewRoute().Subrouter()
	p.Use(auth.Require)

	p.HandleFunc("/users/me", h.Users.UpdateMe).Methods("PATCH")
	p.HandleFunc("/users/{id:[0-9]+}", h.Users.Profile).Methods("GET")

	// Fixed tool paths precede the {id} routes.
	p.HandleFunc("/tools", h.Tools.Create).Methods("POST")
	p.HandleFunc("/tools", h.Tools.ListApproved).Methods("GET")
	p.HandleFunc("/tools/unavailable", h.Tools.ListUnavailable).Methods("GET")
	p.HandleFunc("/tools/pending", h.Tools.ListPending).Methods("GET")
	p.HandleFunc("/tools/mine", h.Tools.ListMine).Methods("GET")
	p.HandleFunc("/tools/{id:[0-9]+}", h.Tools.Get).Methods("GET")
	p.HandleFunc("/tools/{id:[0-9]+}/status", h.Tools.UpdateStatus).Methods("PATCH")
	p.HandleFunc("/tools/{id:[0-9]+}", h.Tools.Remove).Methods("DELETE")

	p.HandleFunc("/loans", h.Loans.Create).Methods("POST")
	p.HandleFunc("/loans/my-loans", h.Loans.MyLoans).Methods("GET")
	p.HandleFunc("/loans/{id:[0-9]+}", h.Loans.Get).Methods("GET")
	p.HandleFunc("/loans/{id:[0-9]+}/status", h.Loans.UpdateStatus).Methods("PATCH")

	p.HandleFunc("/reviews", h.Reviews.Create).Methods("POST")
	p.HandleFunc("/reviews/user/{id:[0-9]+}", h.Reviews.ListForUser).Methods("GET")

	p.HandleFunc("/messages", h.Messages.Send).Methods("POST")
	p.HandleFunc("/messages/contacts", h.Messages.Contacts).Methods("GET")
	p.HandleFunc("/messages/conversation/{otherUserId:[0-9]+}", h.Messages.Conversation).Methods("GET")

	p.HandleFunc("/notifications", h.Notifications.List).Methods("GET")
	p.HandleFunc("/notifications/{id:[0-9]+}/read", h.Notifications.MarkAsRead).Methods("PATCH")

	p.HandleFunc("/favorites", h.Favorites.Add).Methods("POST")
	p.HandleFunc("/favorites", h.Favorites.List).Methods("GET")
	p.HandleFunc("/favorites/{toolId:[0-9]+}", h.Favorites.Remove).Methods("DELETE")

	return r
}
