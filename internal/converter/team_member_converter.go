package converter

import (
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
)

// TeamMemberToResponse converts a TeamMember entity to TeamMemberResponse DTO
func TeamMemberToResponse(member *entity.TeamMember) *dto.TeamMemberResponse {
	if member == nil {
		return nil
	}

	return &dto.TeamMemberResponse{
		ID:          member.ID,
		Name:        member.Name,
		Role:        member.Role,
		Position:    member.Position,
		Email:       member.Email,
		Phone:       member.Phone,
		Description: member.Description,
		ImageURL:    member.ImageURL,
		SortOrder:   member.SortOrder,
		CreatedAt:   member.CreatedAt,
		UpdatedAt:   member.UpdatedAt,
	}
}

// TeamMembersToResponses converts a slice of TeamMember entities
func TeamMembersToResponses(members []entity.TeamMember) []dto.TeamMemberResponse {
	responses := make([]dto.TeamMemberResponse, len(members))
	for i, member := range members {
		resp := TeamMemberToResponse(&member)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
