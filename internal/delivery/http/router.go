package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"padelcoach/internal/delivery/http/controllers"
	"padelcoach/internal/delivery/http/middleware"
	"padelcoach/internal/domain"
)

// Controllers bundles the handlers wired into the router.
type Controllers struct {
	Auth            *controllers.AuthController
	Invitations     *controllers.InvitationController
	Users           *controllers.UserController
	Students        *controllers.StudentController
	Trainers        *controllers.TrainerController
	Courts          *controllers.CourtController
	Sessions        *controllers.SessionController
	SessionStudents *controllers.SessionStudentController
	TrainingPlans   *controllers.TrainingPlanController
}

// NewRouter initializes the HTTP router with all application routes.
// Court listing is deliberately public; the admin-bootstrap endpoint uses
// optional auth so the first admin can be created without a token.
func NewRouter(c Controllers, verifier domain.TokenVerifier) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)
	optional := middleware.OptionalAuth(verifier)

	// Auth
	mux.HandleFunc("POST /auth/login", c.Auth.Login)
	mux.HandleFunc("POST /auth/signup", c.Auth.Signup)
	mux.HandleFunc("POST /auth/request-password-reset", c.Auth.RequestPasswordReset)
	mux.HandleFunc("POST /auth/reset-password", c.Auth.ResetPassword)
	mux.HandleFunc("GET /auth/protected", auth(c.Auth.Protected))

	// Invitations
	mux.HandleFunc("POST /invitations", auth(c.Invitations.Create))
	mux.HandleFunc("GET /invitations", auth(c.Invitations.List))
	mux.HandleFunc("POST /invitations/resend", auth(c.Invitations.Resend))

	// Users
	mux.HandleFunc("GET /users", auth(c.Users.List))
	mux.HandleFunc("POST /users", auth(c.Users.Create))
	mux.HandleFunc("POST /users-admin", optional(c.Users.CreateAdmin))
	mux.HandleFunc("GET /users/{id}", auth(c.Users.Get))
	mux.HandleFunc("PUT /users/{id}", auth(c.Users.Update))
	mux.HandleFunc("DELETE /users/{id}", auth(c.Users.Delete))

	// Students
	mux.HandleFunc("GET /students", auth(c.Students.List))
	mux.HandleFunc("POST /students", auth(c.Students.Create))
	mux.HandleFunc("GET /students/{id}", auth(c.Students.Get))
	mux.HandleFunc("PUT /students/{id}", auth(c.Students.Update))
	mux.HandleFunc("DELETE /students/{id}", auth(c.Students.Delete))

	// Trainers
	mux.HandleFunc("GET /trainers", auth(c.Trainers.List))
	mux.HandleFunc("POST /trainers", auth(c.Trainers.Create))
	mux.HandleFunc("GET /trainers/{id}", auth(c.Trainers.Get))
	mux.HandleFunc("PUT /trainers/{id}", auth(c.Trainers.Update))
	mux.HandleFunc("DELETE /trainers/{id}", auth(c.Trainers.Delete))

	// Courts
	mux.HandleFunc("GET /courts", c.Courts.List)
	mux.HandleFunc("POST /courts", auth(c.Courts.Create))
	mux.HandleFunc("GET /courts/{id}", auth(c.Courts.Get))
	mux.HandleFunc("PUT /courts/{id}", auth(c.Courts.Update))
	mux.HandleFunc("DELETE /courts/{id}", auth(c.Courts.Delete))

	// Sessions
	mux.HandleFunc("GET /sessions", auth(c.Sessions.List))
	mux.HandleFunc("POST /sessions", auth(c.Sessions.Create))
	mux.HandleFunc("GET /sessions/{id}", auth(c.Sessions.Get))
	mux.HandleFunc("PUT /sessions/{id}", auth(c.Sessions.Update))
	mux.HandleFunc("DELETE /sessions/{id}", auth(c.Sessions.Delete))

	// Session-student assignments
	mux.HandleFunc("GET /session-students", auth(c.SessionStudents.List))
	mux.HandleFunc("POST /session-students", auth(c.SessionStudents.Create))
	mux.HandleFunc("GET /session-students/{id}", auth(c.SessionStudents.Get))
	mux.HandleFunc("PUT /session-students/{id}", auth(c.SessionStudents.Update))
	mux.HandleFunc("DELETE /session-students/{id}", auth(c.SessionStudents.Delete))

	// Training plans
	mux.HandleFunc("GET /training-plans", auth(c.TrainingPlans.List))
	mux.HandleFunc("POST /training-plans", auth(c.TrainingPlans.Create))
	mux.HandleFunc("GET /training-plans/{id}", auth(c.TrainingPlans.Get))
	mux.HandleFunc("PUT /training-plans/{id}", auth(c.TrainingPlans.Update))
	mux.HandleFunc("DELETE /training-plans/{id}", auth(c.TrainingPlans.Delete))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
