package handler

import (
	"encoding/xml"
	"time"

	"github.com/msomdec/userdir/internal/domain"
)

// UserDTO is the XML representation of a single user record.
type UserDTO struct {
	XMLName xml.Name `xml:"user"`
	ID      int64    `xml:"id"`
	Name    string   `xml:"name"`
	Email   string   `xml:"email"`
	Phone   string   `xml:"phone,omitempty"`
	Address string   `xml:"address,omitempty"`
	Active  bool     `xml:"active"`
}

func toUserDTO(u *domain.User) UserDTO {
	return UserDTO{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Phone:   u.Phone,
		Address: u.Address,
		Active:  u.Active,
	}
}

// UserListDTO is the XML list envelope: a sequence of user elements,
// a count attribute equal to the sequence length, and a status string.
type UserListDTO struct {
	XMLName xml.Name  `xml:"users"`
	Count   int       `xml:"count,attr"`
	Users   []UserDTO `xml:"user"`
	Status  string    `xml:"status"`
}

func toUserListDTO(users []domain.User) UserListDTO {
	dtos := make([]UserDTO, len(users))
	for i := range users {
		dtos[i] = toUserDTO(&users[i])
	}
	return UserListDTO{Count: len(dtos), Users: dtos, Status: "success"}
}

// ResponseDTO is the XML status envelope used for delete confirmations
// and all error responses.
type ResponseDTO struct {
	XMLName   xml.Name `xml:"response"`
	Status    string   `xml:"status"`
	Message   string   `xml:"message"`
	Timestamp string   `xml:"timestamp"`
}

func newSuccessResponse(message string) ResponseDTO {
	return ResponseDTO{
		Status:    "success",
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

func newErrorResponse(message string) ResponseDTO {
	return ResponseDTO{
		Status:    "error",
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	}
}

// createUserRequest is the XML payload for user creation. Active is a
// pointer so an absent element can default to true.
type createUserRequest struct {
	XMLName xml.Name `xml:"user"`
	Name    string   `xml:"name"`
	Email   string   `xml:"email"`
	Phone   string   `xml:"phone"`
	Address string   `xml:"address"`
	Active  *bool    `xml:"active"`
}

func (req *createUserRequest) toUser() *domain.User {
	active := true
	if req.Active != nil {
		active = *req.Active
	}
	return &domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Active:  active,
	}
}

// updateUserRequest is the XML payload for a full update. Every mutable
// field is taken as-is: absent elements decode to zero values and are
// written through, since a full update is a total overwrite.
type updateUserRequest struct {
	XMLName xml.Name `xml:"user"`
	Name    string   `xml:"name"`
	Email   string   `xml:"email"`
	Phone   string   `xml:"phone"`
	Address string   `xml:"address"`
	Active  bool     `xml:"active"`
}

func (req *updateUserRequest) toUser() *domain.User {
	return &domain.User{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Active:  req.Active,
	}
}

// patchUserRequest is the XML payload for a partial update. Pointer
// fields keep "absent" distinguishable from "present but empty".
type patchUserRequest struct {
	XMLName xml.Name `xml:"user"`
	Name    *string  `xml:"name"`
	Email   *string  `xml:"email"`
	Phone   *string  `xml:"phone"`
	Address *string  `xml:"address"`
	Active  *bool    `xml:"active"`
}

func (req *patchUserRequest) toPatch() domain.UserPatch {
	return domain.UserPatch{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Active:  req.Active,
	}
}
