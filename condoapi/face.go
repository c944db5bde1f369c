package condoapi

import (
	"context"

	"github.com/smart-condominium/condo-console/gateway"
	"github.com/smart-condominium/condo-console/users"
)

type FaceService struct {
	gw *gateway.Gateway
}

type faceImageRequest struct {
	Image string `json:"image"`
}

// FaceMatch is the recognition service's answer: the matched user on
// success, or just a message when no face was matched.
type FaceMatch struct {
	User    *users.Profile `json:"user,omitempty"`
	Message string         `json:"message,omitempty"`
}

// Matched reports whether the capture resolved to a registered face.
func (m FaceMatch) Matched() bool {
	return m.User != nil
}

// Register enrolls a base64-encoded JPEG for the current user.
func (s *FaceService) Register(ctx context.Context, imageBase64 string) error {
	return s.gw.Post(ctx, "/face/register/", faceImageRequest{Image: imageBase64}, nil)
}

// Recognize submits a capture for matching.
func (s *FaceService) Recognize(ctx context.Context, imageBase64 string) (FaceMatch, error) {
	var match FaceMatch
	if err := s.gw.Post(ctx, "/face/recognize/", faceImageRequest{Image: imageBase64}, &match); err != nil {
		return FaceMatch{}, err
	}
	if match.User != nil {
		match.User.Normalize()
	}
	return match, nil
}

// Records lists enrolled faces.
func (s *FaceService) Records(ctx context.Context) ([]FaceRecord, error) {
	var list []FaceRecord
	if err := s.gw.Get(ctx, "/face-records/", &list); err != nil {
		return nil, err
	}
	return list, nil
}
