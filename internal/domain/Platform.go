package domain

import "strings"

// Platform é o conjunto fechado de redes sociais suportadas pelo motor
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
	PlatformFacebook  Platform = "facebook"
	PlatformTikTok    Platform = "tiktok"
	PlatformTwitter   Platform = "twitter"
)

// ContentType representa um formato de conteúdo publicável em uma plataforma
type ContentType string

const (
	ContentTypeVideo      ContentType = "video"
	ContentTypeShortVideo ContentType = "short_video"
	ContentTypeImage      ContentType = "image"
	ContentTypeStory      ContentType = "story"
	ContentTypeReel       ContentType = "reel"
	ContentTypeLive       ContentType = "live"
	ContentTypeText       ContentType = "text"
	ContentTypeThread     ContentType = "thread"
)

// platformContentTypes mapeia cada plataforma para os formatos de conteúdo que ela suporta.
// Tabela fechada: o matcher consulta aqui em vez de comparar strings soltas.
var platformContentTypes = map[Platform][]ContentType{
	PlatformYouTube:   {ContentTypeVideo, ContentTypeShortVideo, ContentTypeLive},
	PlatformInstagram: {ContentTypeImage, ContentTypeStory, ContentTypeReel},
	PlatformFacebook:  {ContentTypeImage, ContentTypeVideo, ContentTypeText, ContentTypeLive},
	PlatformTikTok:    {ContentTypeShortVideo, ContentTypeLive},
	PlatformTwitter:   {ContentTypeText, ContentTypeImage, ContentTypeThread},
}

// AllPlatforms retorna todas as plataformas suportadas
func AllPlatforms() []Platform {
	return []Platform{
		PlatformYouTube,
		PlatformInstagram,
		PlatformFacebook,
		PlatformTikTok,
		PlatformTwitter,
	}
}

// ParsePlatform converte uma tag textual em Platform. O booleano indica se a
// tag pertence ao conjunto suportado.
func ParsePlatform(tag string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(tag)))
	switch p {
	case PlatformYouTube, PlatformInstagram, PlatformFacebook, PlatformTikTok, PlatformTwitter:
		return p, true
	}
	return "", false
}

// ContentTypes retorna os formatos de conteúdo suportados pela plataforma
func (p Platform) ContentTypes() []ContentType {
	return platformContentTypes[p]
}

// SupportsContentType verifica se a plataforma suporta o formato informado
func (p Platform) SupportsContentType(ct ContentType) bool {
	for _, supported := range platformContentTypes[p] {
		if supported == ct {
			return true
		}
	}
	return false
}
