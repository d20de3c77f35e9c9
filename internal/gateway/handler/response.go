package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	pb "github.com/dmitrijs2005/bloghub/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const maxBodyBytes = 1 << 20

const msgInternal = "Internal server error"

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type accountJSON struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Nickname      string `json:"nickname"`
	About         string `json:"about"`
	ProfileImgURL string `json:"profile_img_url"`
	Followers     int64  `json:"followers"`
	Following     int64  `json:"following"`
	MemberSince   string `json:"member_since"`
}

func toAccountJSON(u *pb.User) accountJSON {
	if u == nil {
		return accountJSON{}
	}
	return accountJSON{
		ID:            u.Id,
		Name:          u.Name,
		Nickname:      u.Nickname,
		About:         u.About,
		ProfileImgURL: u.ProfileImgUrl,
		Followers:     u.Followers,
		Following:     u.Following,
		MemberSince:   u.MemberSince,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, errorResponse{Error: msg})
}

// decodeJSON reads a single JSON object from the body. An empty body leaves
// dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// httpStatus maps an RPC error onto an HTTP status and a client-facing
// message. Details of unexpected failures are not exposed.
func httpStatus(err error) (int, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, msgInternal
	}

	switch st.Code() {
	case codes.NotFound:
		return http.StatusNotFound, st.Message()
	case codes.InvalidArgument:
		return http.StatusBadRequest, st.Message()
	case codes.AlreadyExists:
		return http.StatusConflict, st.Message()
	case codes.Unauthenticated:
		return http.StatusUnauthorized, st.Message()
	case codes.PermissionDenied:
		return http.StatusForbidden, st.Message()
	default:
		return http.StatusInternalServerError, msgInternal
	}
}
