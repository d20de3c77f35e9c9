// Package handler implements the REST endpoints of the gateway. Requests are
// validated and normalized here and then forwarded to the user service, one
// RPC per request.
package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/bloghub/internal/gateway/auth"
	"github.com/dmitrijs2005/bloghub/internal/logging"
	pb "github.com/dmitrijs2005/bloghub/internal/proto"
	"github.com/dmitrijs2005/bloghub/internal/validation"
	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidJSON     = "Invalid JSON body"
	msgInvalidUserID   = "Invalid user id"
	msgLoggedOut       = "Successfully logged out"
	msgForeignAvatar   = "You can only change your own avatar"
	msgUserServiceDown = "User service unavailable"
)

// HealthChecker reports whether the user service is reachable.
type HealthChecker interface {
	Check(ctx context.Context) error
}

type Handler struct {
	users    pb.UserServiceClient
	health   HealthChecker
	secret   []byte
	tokenTTL time.Duration
	logger   logging.Logger
}

func New(users pb.UserServiceClient, health HealthChecker, secret []byte, tokenTTL time.Duration, l logging.Logger) *Handler {
	return &Handler{
		users:    users,
		health:   health,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   l.With("module", "handler"),
	}
}

// Routes registers every endpoint on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)

	r.Get("/users", h.ListUsers)
	r.Get("/users/{nickname}", h.GetUser)
	r.Delete("/users/{nickname}", h.DeleteUser)
	r.Put("/users/id/{id}", h.UpdateUser)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireBearer(h.secret, writeError))

		r.Post("/logout", h.Logout)
		r.Post("/users/{nickname}/follow", h.Follow)
		r.Delete("/users/{nickname}/follow", h.Unfollow)
		r.Post("/users/{nickname}/avatar", h.AvatarUploadURL)
	})
}

type registerRequest struct {
	Name          string `json:"name" validate:"required"`
	Nickname      string `json:"nickname" validate:"required"`
	Password      string `json:"password" validate:"required"`
	About         string `json:"about"`
	ProfileImgURL string `json:"profile_img_url"`
}

type registerResponse struct {
	accountJSON
	AccessToken string `json:"access_token"`
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := validation.CheckRequiredFields(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	name, err := validation.NormalizeName(req.Name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	nickname, err := validation.NormalizeNickname(req.Nickname)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	password, err := validation.NormalizePassword(req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.users.CreateUser(r.Context(), &pb.CreateUserRequest{
		Name:          name,
		Nickname:      nickname,
		Password:      password,
		About:         req.About,
		ProfileImgUrl: req.ProfileImgURL,
	})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	token, ok := h.issueToken(w, r, resp.User.GetNickname())
	if !ok {
		return
	}

	writeJSON(w, http.StatusCreated, registerResponse{
		accountJSON: toAccountJSON(resp.User),
		AccessToken: token,
	})
}

type loginRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := validation.CheckRequiredFields(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	nickname, err := validation.NormalizeNickname(req.Nickname)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	password, err := validation.NormalizePassword(req.Password)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.users.LoginUser(r.Context(), &pb.LoginUserRequest{Nickname: nickname, Password: password})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	token, ok := h.issueToken(w, r, resp.User.GetNickname())
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}

// Logout only validates the token; sessions are not tracked server side.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, messageResponse{Message: msgLoggedOut})
}

type usersResponse struct {
	Users []accountJSON `json:"users"`
}

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.users.GetCollectionUsers(r.Context(), &pb.GetCollectionUsersRequest{})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	out := usersResponse{Users: make([]accountJSON, 0, len(resp.Users))}
	for _, u := range resp.Users {
		out.Users = append(out.Users, toAccountJSON(u))
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	nickname, ok := pathNickname(w, r)
	if !ok {
		return
	}

	resp, err := h.users.GetUser(r.Context(), &pb.GetUserRequest{Nickname: nickname})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountJSON(resp.User))
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	nickname, ok := pathNickname(w, r)
	if !ok {
		return
	}

	resp, err := h.users.DeleteUser(r.Context(), &pb.DeleteUserRequest{Nickname: nickname})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: resp.Message})
}

type updateRequest struct {
	Name            string `json:"name"`
	Nickname        string `json:"nickname"`
	About           string `json:"about"`
	ProfileImgURL   string `json:"profile_img_url"`
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, msgInvalidUserID)
		return
	}

	var req updateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if strings.TrimSpace(req.Name) != "" {
		if req.Name, err = validation.NormalizeName(req.Name); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if strings.TrimSpace(req.Nickname) != "" {
		if req.Nickname, err = validation.NormalizeNickname(req.Nickname); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	if req.NewPassword != "" {
		if req.NewPassword, err = validation.NormalizePassword(req.NewPassword); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	resp, err := h.users.UpdateUser(r.Context(), &pb.UpdateUserRequest{
		Id:              id,
		Name:            req.Name,
		Nickname:        req.Nickname,
		About:           req.About,
		ProfileImgUrl:   req.ProfileImgURL,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountJSON(resp.User))
}

func (h *Handler) Follow(w http.ResponseWriter, r *http.Request) {
	follower, followed, ok := followPair(w, r)
	if !ok {
		return
	}

	resp, err := h.users.FollowUser(r.Context(), &pb.FollowUserRequest{Follower: follower, Followed: followed})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountJSON(resp.User))
}

func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request) {
	follower, followed, ok := followPair(w, r)
	if !ok {
		return
	}

	resp, err := h.users.UnfollowUser(r.Context(), &pb.UnfollowUserRequest{Follower: follower, Followed: followed})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toAccountJSON(resp.User))
}

type avatarRequest struct {
	ContentType string `json:"content_type"`
}

type avatarResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
	ObjectURL string `json:"object_url"`
	ExpiresAt string `json:"expires_at"`
}

func (h *Handler) AvatarUploadURL(w http.ResponseWriter, r *http.Request) {
	nickname, ok := pathNickname(w, r)
	if !ok {
		return
	}

	subject, _ := auth.NicknameFromContext(r.Context())
	if subject != nickname {
		writeError(w, http.StatusForbidden, msgForeignAvatar)
		return
	}

	var req avatarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	resp, err := h.users.GetAvatarUploadURL(r.Context(), &pb.GetAvatarUploadURLRequest{
		Nickname:    nickname,
		ContentType: strings.TrimSpace(req.ContentType),
	})
	if err != nil {
		h.rpcError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, avatarResponse{
		Key:       resp.Key,
		UploadURL: resp.UploadUrl,
		ObjectURL: resp.ObjectUrl,
		ExpiresAt: resp.ExpiresAt,
	})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.health.Check(r.Context()); err != nil {
		h.logger.Warn(r.Context(), "user service health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, msgUserServiceDown)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, nickname string) (string, bool) {
	token, err := auth.GenerateToken(nickname, h.secret, h.tokenTTL)
	if err != nil {
		h.logger.Error(r.Context(), "token generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, msgInternal)
		return "", false
	}
	return token, true
}

func (h *Handler) rpcError(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := httpStatus(err)
	if code == http.StatusInternalServerError {
		h.logger.Error(r.Context(), "user service call failed", "error", err)
	}
	writeError(w, code, msg)
}

func pathNickname(w http.ResponseWriter, r *http.Request) (string, bool) {
	nickname, err := validation.NormalizeNickname(chi.URLParam(r, "nickname"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return nickname, true
}

func followPair(w http.ResponseWriter, r *http.Request) (string, string, bool) {
	followed, ok := pathNickname(w, r)
	if !ok {
		return "", "", false
	}
	follower, _ := auth.NicknameFromContext(r.Context())
	return follower, followed, true
}
