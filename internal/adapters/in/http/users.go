package http

import (
	"net/http"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// LoginByEmail handles POST /users/login/email.
func (s *Server) LoginByEmail(c echo.Context) error {
	var req LoginByEmailRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	query, err := queries.NewLoginByEmailQuery(req.Email, req.Password)
	if err != nil {
		return err
	}

	return s.login(c, query)
}

// LoginByPhone handles POST /users/login/phone.
func (s *Server) LoginByPhone(c echo.Context) error {
	var req LoginByPhoneRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	query, err := queries.NewLoginByPhoneQuery(req.PhoneNumber, req.Password)
	if err != nil {
		return err
	}

	return s.login(c, query)
}

func (s *Server) login(c echo.Context, query queries.LoginQuery) error {
	result, err := s.h.Login.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, LoginResponse{ID: result.UserID, AccessToken: result.AccessToken})
}

// CreateUser handles POST /users.
func (s *Server) CreateUser(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req UserRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateUserCommand(caller, userInput(req))
	if err != nil {
		return err
	}

	created, err := s.h.CreateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(created))
}

// ListUsers handles GET /users?page=&limit=.
func (s *Server) ListUsers(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	page, err := pageParams(c)
	if err != nil {
		return err
	}

	query, err := queries.NewListUsersQuery(caller, page)
	if err != nil {
		return err
	}

	users, err := s.h.Users.List(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPageResponse(users, toUserResponse))
}

// GetUser handles GET /users/{id}.
func (s *Server) GetUser(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	query, err := queries.NewGetUserQuery(caller, id)
	if err != nil {
		return err
	}

	found, err := s.h.Users.Get(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(found))
}

// GetMe handles GET /users/me.
func (s *Server) GetMe(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	me, err := s.h.Users.Get(c.Request().Context(), queries.NewGetMeQuery(caller))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(me))
}

// UpdateUser handles PUT /users/{id}.
func (s *Server) UpdateUser(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	var req UserRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateUserCommand(caller, id, userInput(req))
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateUser.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// UpdateMe handles PUT /users/me. The role cannot be changed through this route.
func (s *Server) UpdateMe(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	var req ProfileRequest
	if err = bind(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateMeCommand(caller, commands.ProfileInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return err
	}

	updated, err := s.h.UpdateMe.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(updated))
}

// DeleteUser handles DELETE /users/{id}.
func (s *Server) DeleteUser(c echo.Context) error {
	caller, err := callerFrom(c)
	if err != nil {
		return err
	}

	id, err := int64Param(c, "id")
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeleteUserCommand(caller, id)
	if err != nil {
		return err
	}

	if err = s.h.DeleteUser.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func userInput(req UserRequest) commands.UserInput {
	return commands.UserInput{
		Role:        req.role(),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	}
}
