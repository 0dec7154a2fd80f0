package http

import (
	"encoding/json"
	"time"

	"parcels/internal/core/domain/model/category"
	"parcels/internal/core/domain/model/department"
	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/model/user"
	"parcels/internal/pkg/pagination"

	"github.com/shopspring/decimal"
)

type LoginByEmailRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginByPhoneRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type LoginResponse struct {
	ID          int64  `json:"id"`
	AccessToken string `json:"accessToken"`
}

type UserRequest struct {
	RoleID      int     `json:"roleId"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Password    *string `json:"password"`
}

type ProfileRequest struct {
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Password    *string `json:"password"`
}

type UserResponse struct {
	ID          int64   `json:"id"`
	RoleID      int     `json:"roleId"`
	Role        string  `json:"role"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
}

type DepartmentRequest struct {
	Number      int    `json:"number"`
	FullAddress string `json:"fullAddress"`
}

type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Number      int    `json:"number"`
	FullAddress string `json:"fullAddress"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type StatusResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreatePackageRequest keeps amounts as decimals so "10.555" is rejected rather
// than rounded on the way in.
type CreatePackageRequest struct {
	CategoryID           int64            `json:"categoryId"`
	SenderUserID         int64            `json:"senderUserId"`
	ReceiverUserID       int64            `json:"receiverUserId"`
	SenderDepartmentID   int64            `json:"senderDepartmentId"`
	ReceiverDepartmentID int64            `json:"receiverDepartmentId"`
	PackagePrice         *decimal.Decimal `json:"packagePrice"`
	DeliveryPrice        *decimal.Decimal `json:"deliveryPrice"`
	Weight               *decimal.Decimal `json:"weight"`
	Description          *string          `json:"description"`
}

type UpdatePackageRequest struct {
	CategoryID  int64   `json:"categoryId"`
	Description *string `json:"description"`
}

type PartyResponse struct {
	ID          int64   `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       *string `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
}

type PackageResponse struct {
	ID                 string             `json:"id"`
	Status             StatusResponse     `json:"status"`
	Category           CategoryResponse   `json:"category"`
	Sender             PartyResponse      `json:"sender"`
	Receiver           PartyResponse      `json:"receiver"`
	SenderDepartment   DepartmentResponse `json:"senderDepartment"`
	ReceiverDepartment DepartmentResponse `json:"receiverDepartment"`
	CreatedAt          time.Time          `json:"createdAt"`
	ModifiedAt         *time.Time         `json:"modifiedAt"`
	SentAt             *time.Time         `json:"sentAt"`
	ArrivedAt          *time.Time         `json:"arrivedAt"`
	ReceivedAt         *time.Time         `json:"receivedAt"`
	ArchivedAt         *time.Time         `json:"archivedAt"`
	PackagePrice       json.Number        `json:"packagePrice"`
	DeliveryPrice      json.Number        `json:"deliveryPrice"`
	Weight             json.Number        `json:"weight"`
	Description        *string            `json:"description"`
}

// PageResponse is the envelope of every paged list.
type PageResponse[T any] struct {
	TotalCount int64 `json:"totalCount"`
	TotalPages int64 `json:"totalPages"`
	Items      []T   `json:"items"`
}

func toPageResponse[T, R any](p pagination.Page[T], fn func(T) R) PageResponse[R] {
	mapped := pagination.Map(p, fn)
	return PageResponse[R]{
		TotalCount: mapped.TotalCount,
		TotalPages: mapped.TotalPages,
		Items:      mapped.Items,
	}
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:          u.ID(),
		RoleID:      int(u.Role()),
		Role:        u.Role().String(),
		FirstName:   u.FirstName(),
		LastName:    u.LastName(),
		Email:       u.Email(),
		PhoneNumber: u.PhoneNumber(),
	}
}

func toDepartmentResponse(d *department.Department) DepartmentResponse {
	return DepartmentResponse{ID: d.ID(), Number: d.Number(), FullAddress: d.FullAddress()}
}

func toCategoryResponse(c *category.Category) CategoryResponse {
	return CategoryResponse{ID: c.ID(), Name: c.Name()}
}

func toStatusResponse(s parcel.Status) StatusResponse {
	return StatusResponse{ID: int(s), Name: s.String()}
}

func toPartyResponse(p parcel.Party) PartyResponse {
	return PartyResponse{
		ID:          p.ID,
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		Email:       p.Email,
		PhoneNumber: p.PhoneNumber,
	}
}

func toPackageResponse(v parcel.View) PackageResponse {
	return PackageResponse{
		ID:       v.ID.String(),
		Status:   toStatusResponse(v.Status),
		Category: CategoryResponse{ID: v.Category.ID, Name: v.Category.Name},
		Sender:   toPartyResponse(v.Sender),
		Receiver: toPartyResponse(v.Receiver),
		SenderDepartment: DepartmentResponse{
			ID:          v.SenderDepartment.ID,
			Number:      v.SenderDepartment.Number,
			FullAddress: v.SenderDepartment.FullAddress,
		},
		ReceiverDepartment: DepartmentResponse{
			ID:          v.ReceiverDepartment.ID,
			Number:      v.ReceiverDepartment.Number,
			FullAddress: v.ReceiverDepartment.FullAddress,
		},
		CreatedAt:     v.Timeline.CreatedAt,
		ModifiedAt:    v.Timeline.ModifiedAt,
		SentAt:        v.Timeline.SentAt,
		ArrivedAt:     v.Timeline.ArrivedAt,
		ReceivedAt:    v.Timeline.ReceivedAt,
		ArchivedAt:    v.Timeline.ArchivedAt,
		PackagePrice:  money(v.Details.PackagePrice),
		DeliveryPrice: money(v.Details.DeliveryPrice),
		Weight:        money(v.Details.Weight),
		Description:   v.Details.Description,
	}
}

// money renders a numeric(p,2) value as a bare JSON number with two decimals.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.StringFixed(2))
}

func (r UserRequest) role() kernel.Role {
	return kernel.Role(r.RoleID)
}
