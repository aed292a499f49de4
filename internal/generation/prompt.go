package generation

import (
	"fmt"
	"strings"

	"socialcopilot/internal/common"
)

// platformCharLimits are the character budgets for hook+body+cta concatenated
// with blank-line separators, hashtags excluded. These numbers are part of
// the prompt contract and must appear verbatim in the composed instruction.
var platformCharLimits = map[common.Platform]int{
	common.PlatformLinkedIn:  3000,
	common.PlatformInstagram: 2200,
	common.PlatformTwitter:   280,
	common.PlatformTikTok:    2200,
	common.PlatformFacebook:  500,
	common.PlatformThreads:   500,
}

var platformGuidelines = map[common.Platform]string{
	common.PlatformLinkedIn:  "Profissional, mas pessoal, bom espaçamento, tom de autoridade.",
	common.PlatformInstagram: "Legenda focada no visual, engajadora, amigável, use emojis.",
	common.PlatformTwitter:   "Direto, curto, estilo thread se o corpo for longo.",
	common.PlatformTikTok:    "Roteiro dinâmico, gancho forte nos primeiros segundos, linguagem leve.",
	common.PlatformFacebook:  "Tom próximo e comunitário, convide à conversa nos comentários.",
	common.PlatformThreads:   "Conversacional, frases curtas, sem formalidade.",
}

// Natural-language labels for profile enums. Wire values stay in English;
// these exist only inside prompt text.
var positioningLabels = map[string]string{
	"educator":      "Educador",
	"authority":     "Autoridade",
	"inspirational": "Inspirador",
	"seller":        "Vendedor",
}

var toneLabels = map[string]string{
	"professional": "Profissional",
	"casual":       "Casual",
	"provocative":  "Provocativo",
	"educational":  "Didático",
}

var lengthLabels = map[string]string{
	"short":  "Curtos",
	"medium": "Médios",
	"long":   "Longos",
}

var audienceLevelLabels = map[string]string{
	"beginner":     "Iniciante",
	"intermediate": "Intermediário",
	"advanced":     "Avançado",
}

var goalLabels = map[string]string{
	"grow_audience":  "Crescer Audiência",
	"generate_leads": "Gerar Leads",
	"sell":           "Vender",
}

var offerTypeLabels = map[string]string{
	"product":      "Produto",
	"service":      "Serviço",
	"free_content": "Conteúdo Gratuito",
	"none":         "Nada ainda",
}

var contentFocusLabels = map[string]string{
	"authority":    "Autoridade",
	"relationship": "Relacionamento",
	"sales":        "Venda",
}

const systemInstruction = `Você é um assistente que gera posts para redes sociais em formato JSON. ` +
	`Responda APENAS o JSON puro, sem explicações ou blocos de código markdown. ` +
	`Siga EXATAMENTE a estrutura: {"hook": "...", "body": "...", "cta": "...", "tip": "...", "hashtags": ["...", "..."]}`

// PlatformCharLimit exposes the budget for a platform; 0 for unknown.
func PlatformCharLimit(p common.Platform) int {
	return platformCharLimits[p]
}

// ComposePrompt deterministically turns (platform, objective, topic, optional
// profile) into the full generation instruction. Pure function of its inputs
// and the fixed tables above; it validates before anything else so bad input
// never reaches a provider.
func ComposePrompt(platform common.Platform, objective common.Objective, topic string, profile *common.CreatorProfile) (Prompt, error) {
	if !platform.IsValid() {
		return Prompt{}, fmt.Errorf("%w: unknown platform %q", common.ErrInvalidRequest, platform)
	}
	if !objective.IsValid() {
		return Prompt{}, fmt.Errorf("%w: unknown objective %q", common.ErrInvalidRequest, objective)
	}
	if err := common.ValidateTopic(topic); err != nil {
		return Prompt{}, err
	}

	topic = common.SanitizeText(topic, common.TopicMaxLen)

	var sb strings.Builder
	sb.WriteString("Atue como um Copywriter de Redes Sociais e Especialista em Crescimento de classe mundial.\n\n")
	sb.WriteString(fmt.Sprintf("Crie um post para rede social para: %s\n", platform))
	sb.WriteString(fmt.Sprintf("Objetivo: %s\n", objective))
	sb.WriteString(fmt.Sprintf("Tópico: %s\n\n", topic))

	sb.WriteString("Diretrizes da plataforma:\n")
	sb.WriteString(fmt.Sprintf("- %s: %s\n", platform, platformGuidelines[platform]))
	sb.WriteString(fmt.Sprintf("- Limite de caracteres para %s: %d (hook + body + cta somados; hashtags ficam fora da contagem).\n\n",
		platform, platformCharLimits[platform]))

	if profile != nil {
		writeProfileContext(&sb, profile)
	}

	sb.WriteString("Formato de saída:\n")
	sb.WriteString(`- Retorne o resultado estritamente em formato JSON com exatamente os campos: hook, body, cta, tip e hashtags.` + "\n")
	sb.WriteString("- hashtags deve ser uma lista de 5 a 8 strings, sem o caractere '#'.\n")
	sb.WriteString("- Não inclua explicações nem blocos de código, apenas o JSON puro.\n")
	sb.WriteString("- A resposta deve ser em Português (Brasil).\n")

	return Prompt{System: systemInstruction, User: sb.String()}, nil
}

// writeProfileContext renders the creator's profile as natural language. All
// free-text fields pass through the sanitizer before interpolation.
func writeProfileContext(sb *strings.Builder, p *common.CreatorProfile) {
	sb.WriteString("Contexto do criador:\n")

	if role := common.SanitizeText(p.Role, 200); role != "" {
		sb.WriteString(fmt.Sprintf("- Atua como: %s", role))
		if exp := common.SanitizeText(p.ExperienceYears, 30); exp != "" {
			sb.WriteString(fmt.Sprintf(" (%s de experiência)", exp))
		}
		sb.WriteString(".\n")
	}
	if label, ok := positioningLabels[p.Positioning]; ok {
		sb.WriteString(fmt.Sprintf("- Posicionamento: %s.\n", label))
	}
	if label, ok := toneLabels[p.ToneOfVoice]; ok {
		sb.WriteString(fmt.Sprintf("- Tom de voz: %s.\n", label))
	}
	if label, ok := lengthLabels[p.ContentLength]; ok {
		sb.WriteString(fmt.Sprintf("- Prefere posts: %s.\n", label))
	}
	if label, ok := goalLabels[p.PrimaryGoal]; ok {
		sb.WriteString(fmt.Sprintf("- Principal objetivo: %s.\n", label))
	}

	if audience := common.SanitizeText(p.Audience.Profile, 500); audience != "" {
		sb.WriteString(fmt.Sprintf("- Público: %s", audience))
		if label, ok := audienceLevelLabels[p.Audience.Level]; ok {
			sb.WriteString(fmt.Sprintf(" (nível %s)", label))
		}
		sb.WriteString(".\n")
	} else if label, ok := audienceLevelLabels[p.Audience.Level]; ok {
		sb.WriteString(fmt.Sprintf("- Nível do público: %s.\n", label))
	}
	if pain := common.SanitizeText(p.Audience.MainPain, 500); pain != "" {
		sb.WriteString(fmt.Sprintf("- Principal dor do público: %s.\n", pain))
	}
	if desire := common.SanitizeText(p.Audience.MainDesire, 500); desire != "" {
		sb.WriteString(fmt.Sprintf("- Principal desejo do público: %s.\n", desire))
	}

	if label, ok := offerTypeLabels[p.Offer.Type]; ok && p.Offer.Type != "none" {
		sb.WriteString(fmt.Sprintf("- Oferta: %s", label))
		if benefit := common.SanitizeText(p.Offer.MainBenefit, 500); benefit != "" {
			sb.WriteString(fmt.Sprintf("; benefício principal: %s", benefit))
		}
		sb.WriteString(".\n")
	}
	if label, ok := contentFocusLabels[p.Offer.ContentFocus]; ok {
		sb.WriteString(fmt.Sprintf("- Foco do conteúdo: %s.\n", label))
	}
	if style := common.SanitizeText(p.StyleReference, 500); style != "" {
		sb.WriteString(fmt.Sprintf("- Referência de estilo: %s.\n", style))
	}

	sb.WriteString("\n")
}
