package mappings

import (
	"context"
	"net/http"

	"github.com/spec-kit/catalog-admin/internal/api/dto"
	"github.com/spec-kit/catalog-admin/internal/dispatch"
	"github.com/spec-kit/catalog-admin/internal/service"
)

// sessionOutput mirrors the access token into the X-Access-Token header so
// the frontend can read it without parsing the body.
func sessionOutput(_ *dispatch.Context, result any) (*dispatch.Response, error) {
	session := result.(*service.SessionResult)
	resp := &dispatch.Response{Status: http.StatusOK, Body: session}
	resp.SetHeader("X-Access-Token", session.Token)
	return resp, nil
}

// UserMappings declares the authentication routes.
func UserMappings(auth *service.AuthService) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Path:      "/user/logins",
			Method:    http.MethodPost,
			Service:   "userService",
			Operation: "login",
			Input: func(dctx *dispatch.Context) (any, error) {
				var req dto.LoginRequest
				if err := dctx.Request.DecodeBody(&req); err != nil {
					return nil, err
				}
				return &req, nil
			},
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return auth.Login(ctx, args.(*dto.LoginRequest))
			},
			Output: sessionOutput,
		},
		{
			Path:      "/user/registers",
			Method:    http.MethodPost,
			Service:   "userService",
			Operation: "register",
			Input: func(dctx *dispatch.Context) (any, error) {
				var req dto.RegisterRequest
				if err := dctx.Request.DecodeBody(&req); err != nil {
					return nil, err
				}
				return &req, nil
			},
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return auth.Register(ctx, args.(*dto.RegisterRequest))
			},
		},
		{
			Path:      "/user/refreshTokens",
			Method:    http.MethodPost,
			Service:   "userService",
			Operation: "refreshToken",
			Input: func(dctx *dispatch.Context) (any, error) {
				var req dto.RefreshRequest
				if err := dctx.Request.DecodeBody(&req); err != nil {
					return nil, err
				}
				return &req, nil
			},
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return auth.Refresh(ctx, args.(*dto.RefreshRequest))
			},
			Output: sessionOutput,
		},
		{
			Path:      "/user/changePasswords/:id",
			Method:    http.MethodPut,
			Service:   "userService",
			Operation: "changePassword",
			Protected: true,
			Input: func(dctx *dispatch.Context) (any, error) {
				var req dto.ChangePasswordRequest
				if err := dctx.Request.DecodeBody(&req); err != nil {
					return nil, err
				}
				req.UserID = dctx.Request.Params["id"]
				return &req, nil
			},
			Handle: func(ctx context.Context, _ *dispatch.Context, args any) (any, error) {
				return auth.ChangePassword(ctx, args.(*dto.ChangePasswordRequest))
			},
		},
	}
}
