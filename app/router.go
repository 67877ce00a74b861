package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundErrorResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedErrorResponse)

	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)

	// user service
	router.HandlerFunc(http.MethodPost, "/auth/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/auth/login", app.loginUserHandler)
	router.HandlerFunc(http.MethodGet, "/user", app.requireAuthUser(app.getAllUsersHandler))
	router.HandlerFunc(http.MethodGet, "/user/:id", app.getUserHandler)
	router.HandlerFunc(http.MethodPatch, "/user/:id", app.updateUserHandler)
	router.HandlerFunc(http.MethodDelete, "/user/:id", app.deleteUserHandler)

	// post service
	router.HandlerFunc(http.MethodGet, "/post", app.getAllPostsHandler)
	router.HandlerFunc(http.MethodPost, "/post", app.createPostHandler)
	router.HandlerFunc(http.MethodGet, "/post/:slug", app.getPostHandler)
	router.HandlerFunc(http.MethodDelete, "/post/:slug", app.deletePostHandler)

	return app.recoverPanic(app.logRequest(app.rateLimit(app.authenticate(router))))
}
