package upsert

import (
	"strings"

	"github.com/fr0stylo/pfsync/internal/app/domain"
)

// ListingFields maps listing documents onto local fields.
var ListingFields = FieldTable{
	{Source: "reference", Target: "reference", Transform: SanitizeText},
	{Source: "category", Target: "category", Transform: SanitizeText},
	{Source: "type", Target: "property_type", Transform: SanitizeText},
	{Source: "price.type", Target: "offering_type", Transform: SanitizeText},
	{Source: "price.amounts.sale", Target: "price_sale", Transform: Identity},
	{Source: "price.amounts.yearly", Target: "price_yearly", Transform: Identity},
	{Source: "price.amounts.monthly", Target: "price_monthly", Transform: Identity},
	{Source: "price.amounts.daily", Target: "price_daily", Transform: Identity},
	{Source: "price.downpayment", Target: "price_downpayment", Transform: Identity},
	{Source: "price.numberOfCheques", Target: "price_cheques", Transform: Identity},
	{Source: "bedrooms", Target: "bedrooms", Transform: Identity},
	{Source: "bathrooms", Target: "bathrooms", Transform: Identity},
	{Source: "size", Target: "size", Transform: Identity},
	{Source: "plotSize", Target: "plot_size", Transform: Identity},
	{Source: "floorNumber", Target: "floor_number", Transform: SanitizeText},
	{Source: "parkingSlots", Target: "parking_slots", Transform: Identity},
	{Source: "age", Target: "property_age", Transform: Identity},
	{Source: "furnishingType", Target: "furnishing_type", Transform: SanitizeText},
	{Source: "finishingType", Target: "finishing_type", Transform: SanitizeText},
	{Source: "projectStatus", Target: "project_status", Transform: SanitizeText},
	{Source: "availableFrom", Target: "available_from", Transform: SanitizeText},
	{Source: "title.ar", Target: "title_ar", Transform: SanitizeText},
	{Source: "description.ar", Target: "description_ar", Transform: SanitizeText},
	{Source: "location.id", Target: "location_id", Transform: Identity},
	{Source: "location", Target: "location", Transform: SerializeStructure},
	{Source: "amenities", Target: "amenities", Transform: SerializeStructure},
	{Source: "compliance", Target: "compliance", Transform: SerializeStructure},
	{Source: "media.images", Target: "images", Transform: SerializeStructure},
	{Source: "media.videos.default", Target: "video_url", Transform: SanitizeURL},
	{Source: "media.videos.view360", Target: "tour_url", Transform: SanitizeURL},
	{Source: "assignedTo.id", Target: "agent_id", Transform: Identity},
	{Source: "state.type", Target: "remote_state", Transform: SanitizeText},
	{Source: "portals.propertyfinder.isLive", Target: "is_live", Transform: BooleanToYesNo},
	{Source: "hasGarden", Target: "has_garden", Transform: BooleanToYesNo},
	{Source: "hasKitchen", Target: "has_kitchen", Transform: BooleanToYesNo},
	{Source: "hasParkingOnSite", Target: "has_parking", Transform: BooleanToYesNo},
	{Source: "createdAt", Target: "remote_created_at", Transform: SanitizeText},
	{Source: "updatedAt", Target: "remote_updated_at", Transform: SanitizeText},
}

// AgentFields maps user documents onto local agent fields.
var AgentFields = FieldTable{
	{Source: "email", Target: "email", Transform: SanitizeEmail},
	{Source: "firstName", Target: "first_name", Transform: SanitizeText},
	{Source: "lastName", Target: "last_name", Transform: SanitizeText},
	{Source: "mobile", Target: "mobile", Transform: SanitizeText},
	{Source: "status", Target: "remote_status", Transform: SanitizeText},
	{Source: "role.name", Target: "role", Transform: SanitizeText},
	{Source: "publicProfile.id", Target: "public_profile_id", Transform: Identity},
	{Source: "publicProfile.name", Target: "public_name", Transform: SanitizeText},
	{Source: "publicProfile.email", Target: "public_email", Transform: SanitizeEmail},
	{Source: "publicProfile.phone", Target: "phone", Transform: SanitizeText},
	{Source: "publicProfile.whatsappPhone", Target: "whatsapp", Transform: SanitizeText},
	{Source: "publicProfile.position.primary", Target: "position", Transform: SanitizeText},
	{Source: "publicProfile.position.secondary", Target: "position_ar", Transform: SanitizeText},
	{Source: "publicProfile.bio.secondary", Target: "bio_ar", Transform: SanitizeText},
	{Source: "publicProfile.linkedinAddress", Target: "linkedin_url", Transform: SanitizeURL},
	{Source: "publicProfile.experienceSince", Target: "experience_since", Transform: Identity},
	{Source: "publicProfile.nationality", Target: "nationality", Transform: SanitizeText},
	{Source: "publicProfile.spokenLanguages", Target: "languages", Transform: SerializeStructure},
	{Source: "publicProfile.compliances", Target: "compliances", Transform: SerializeStructure},
	{Source: "publicProfile.isSuperAgent", Target: "super_agent", Transform: BooleanToYesNo},
	{Source: "publicProfile.verification.status", Target: "verification_status", Transform: SanitizeText},
}

// agentImagePaths lists profile image candidates from most to least preferred.
var agentImagePaths = []string{
	"publicProfile.imageVariants.large.webp",
	"publicProfile.imageVariants.large.jpg",
	"publicProfile.imageVariants.large.default",
	"publicProfile.imageUrl",
}

// Profile binds a field table and display resolvers to one kind.
type Profile struct {
	Kind   domain.Kind
	Fields FieldTable
	// Title returns the mapped display title, or "" when the entity carries none.
	Title func(domain.RemoteEntity) string
	// FallbackTitle names records created without a mapped title.
	FallbackTitle func(externalID string) string
	Body          func(domain.RemoteEntity) string
	// ImageURL is nil for kinds without a profile image.
	ImageURL func(domain.RemoteEntity) string
}

// ListingProfile describes listings.
var ListingProfile = Profile{
	Kind:   domain.KindListing,
	Fields: ListingFields,
	Title: func(e domain.RemoteEntity) string {
		return firstNonEmpty(e, SanitizeText, "title.en", "title.ar")
	},
	FallbackTitle: func(id string) string { return "Listing " + id },
	Body: func(e domain.RemoteEntity) string {
		return firstNonEmpty(e, Identity, "description.en", "description.ar")
	},
}

// AgentProfile describes agents.
var AgentProfile = Profile{
	Kind:   domain.KindAgent,
	Fields: AgentFields,
	Title: func(e domain.RemoteEntity) string {
		if name := SanitizeText.Apply(e.Get("publicProfile.name")); name != "" {
			return name
		}
		first := SanitizeText.Apply(e.Get("firstName"))
		last := SanitizeText.Apply(e.Get("lastName"))
		return strings.TrimSpace(first + " " + last)
	},
	FallbackTitle: func(id string) string { return "Agent " + id },
	Body: func(e domain.RemoteEntity) string {
		return firstNonEmpty(e, Identity, "publicProfile.bio.primary", "publicProfile.bio.secondary")
	},
	ImageURL: func(e domain.RemoteEntity) string {
		return firstNonEmpty(e, SanitizeURL, agentImagePaths...)
	},
}
