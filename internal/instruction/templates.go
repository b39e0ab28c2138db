// Package instruction turns template and configuration choices into the
// natural-language instructions sent to the image model. Building is pure:
// the same template, prompt option and configuration snapshot always produce
// the same instruction text.
package instruction

// TemplateID names a pre-authored style template. The empty value means no
// template is selected.
type TemplateID string

const (
	TemplateNone              TemplateID = ""
	TemplateDecades           TemplateID = "decades"
	TemplateStyleLookbook     TemplateID = "styleLookbook"
	TemplateEightiesMall      TemplateID = "eightiesMall"
	TemplateFigurines         TemplateID = "figurines"
	TemplateHairStyler        TemplateID = "hairStyler"
	TemplateImpossibleSelfies TemplateID = "impossibleSelfies"
	TemplateHeadshots         TemplateID = "headshots"
	TemplateRetroPoster       TemplateID = "retroPoster"
	TemplateCyberpunkCity     TemplateID = "cyberpunkCity"
	TemplateOilPainting       TemplateID = "oilPainting"
	TemplateWatercolor        TemplateID = "watercolor"
	TemplateSteampunk         TemplateID = "steampunk"
	TemplatePixelArt          TemplateID = "pixelArt"
)

// PromptOption is one generable item inside a template: a short label and the
// prompt fragment interpolated into the final instruction.
type PromptOption struct {
	ID   string `json:"id"`
	Base string `json:"base"`
}

// Template is a named style bundle with its per-item prompt options.
type Template struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Polaroid    bool           `json:"isPolaroid"`
	Prompts     []PromptOption `json:"prompts"`
	Styles      []string       `json:"styles,omitempty"`
}

// Order lists templates in display order.
var Order = []TemplateID{
	TemplateDecades,
	TemplateStyleLookbook,
	TemplateEightiesMall,
	TemplateFigurines,
	TemplateHairStyler,
	TemplateImpossibleSelfies,
	TemplateHeadshots,
	TemplateRetroPoster,
	TemplateCyberpunkCity,
	TemplateOilPainting,
	TemplateWatercolor,
	TemplateSteampunk,
	TemplatePixelArt,
}

// Lookup returns the template for the given id.
func Lookup(id TemplateID) (Template, bool) {
	t, ok := Catalog[id]
	return t, ok
}

// Catalog holds every pre-authored template, keyed by id.
var Catalog = map[TemplateID]Template{
	TemplateDecades: {
		Name:        "Viajante do Tempo",
		Description: "Veja-se através das décadas.",
		Icon:        "⏳",
		Polaroid:    true,
		Prompts: []PromptOption{
			{ID: "Anos 50", Base: "Recriar como um retrato fotográfico dos anos 1950, com moda e cabelo daquela época, com cores quentes e levemente desbotadas."},
			{ID: "Anos 60", Base: "Recriar como um retrato fotográfico dos anos 1960, com estilo mod, cores vibrantes e um leve grão de filme."},
			{ID: "Anos 70", Base: "Recriar como um retrato fotográfico dos anos 1970, com estilo disco/boêmio, tons terrosos e quentes."},
			{ID: "Anos 80", Base: "Recriar como uma foto de estúdio glamorosa dos anos 1980, com cores neon, cabelo volumoso e foco suave."},
			{ID: "Anos 90", Base: "Recriar como uma foto casual dos anos 1990, com estilo grunge/pop e a aparência de uma foto instantânea."},
			{ID: "Anos 2000", Base: "Recriar como uma foto do início dos anos 2000, com estilo Y2K/pop-punk e a aparência nítida de uma câmera digital antiga."},
		},
	},
	TemplateStyleLookbook: {
		Name:        "Lookbook de Estilo",
		Description: "Seu ensaio de moda pessoal.",
		Icon:        "👗",
		Styles: []string{
			"Clássico / Casual", "Streetwear", "Vintage", "Gótico", "Preppy", "Minimalista",
			"Athleisure", "Old Money / Luxo Discreto", "Boêmio (Boho)", "Business Casual",
			"Grunge anos 90", "Coquetel / Formal",
		},
		Prompts: []PromptOption{
			{ID: "Look 1", Base: "uma foto de corpo inteiro, em pé"},
			{ID: "Look 2", Base: "uma foto de meio corpo, sorrindo"},
			{ID: "Look 3", Base: "uma foto espontânea andando"},
			{ID: "Look 4", Base: "uma foto mostrando detalhes da roupa"},
			{ID: "Look 5", Base: "uma pose sentada"},
			{ID: "Look 6", Base: "um close-up focado nos acessórios"},
		},
	},
	TemplateEightiesMall: {
		Name:        "Sessão no Shopping 80's",
		Description: "Retratos totalmente tubulares dos anos 80.",
		Icon:        "📼",
		Prompts: []PromptOption{
			{ID: "Sorrindo", Base: "uma pose amigável e sorridente"},
			{ID: "Pensativo", Base: "uma pose pensativa, olhando para longe da câmera"},
			{ID: "Divertido", Base: "uma pose divertida, rindo"},
			{ID: "Sério", Base: "uma pose séria e dramática"},
			{ID: "Mão no Queixo", Base: "posando com a mão no queixo"},
			{ID: "Por cima do Ombro", Base: "olhando para trás por cima do ombro"},
		},
	},
	TemplateFigurines: {
		Name:        "Miniatura de Mim",
		Description: "Suas próprias estatuetas colecionáveis.",
		Icon:        "🧍‍♂️",
		Prompts: []PromptOption{
			{ID: "Bobblehead", Base: "Uma figura realista de bobblehead da pessoa com uma cabeça superdimensionada, exibida em uma mesa de madeira polida ao lado de um teclado de computador."},
			{ID: "Estatueta de Porcelana", Base: "Uma delicada estatueta de porcelana de souvenir da pessoa, pintada com cores brilhantes, sentada em uma toalhinha de renda sobre uma cômoda vintage."},
			{ID: "Action Figure Retrô", Base: "Uma figura de ação retrô estilo anos 1980 da pessoa, completa com articulações e pintura levemente desgastada, em uma pose dinâmica sobre uma base de diorama rochoso."},
			{ID: "Figura de Vinil", Base: "Um brinquedo de arte colecionável de vinil estilizado da pessoa com características minimalistas, em pé em uma prateleira cheia de outros brinquedos semelhantes."},
			{ID: "Figura de Pelúcia", Base: "Uma figura de pelúcia macia e fofa da pessoa com textura de tecido detalhada e costura, sentada em uma cama arrumada."},
			{ID: "Arte Folclórica de Madeira", Base: "Uma figura de arte folclórica de madeira esculpida à mão da pessoa, pintada com detalhes rústicos e encantadores, em pé sobre um bloco de madeira simples em uma mesa de feira de artesanato."},
		},
	},
	TemplateHairStyler: {
		Name:        "Estilista de Cabelo",
		Description: "Experimente novos penteados e cores.",
		Icon:        "💇‍♀️",
		Prompts: []PromptOption{
			{ID: "Short", Base: "um penteado curto"},
			{ID: "Medium", Base: "um penteado de comprimento médio"},
			{ID: "Long", Base: "um penteado longo"},
			{ID: "Straight", Base: "cabelo liso"},
			{ID: "Wavy", Base: "cabelo ondulado"},
			{ID: "Curly", Base: "cabelo cacheado"},
		},
	},
	TemplateImpossibleSelfies: {
		Name:        "Fotos Impossíveis",
		Description: "Fotos que desafiam a realidade.",
		Icon:        "🚀",
		Prompts: []PromptOption{
			{ID: "Com Lincoln", Base: "A pessoa posando com Abraham Lincoln, que também está fazendo um sinal de paz e mostrando a língua. Mantenha o local original."},
			{ID: "Alien & Bolhas", Base: "A pessoa posando ao lado de um alienígena realista segurando duas pistolas de bolhas, soprando milhares de bolhas. Mantenha a pose da pessoa e o local original."},
			{ID: "Quarto de Filhotes", Base: "A pessoa posando em uma sala cheia de cem cachorrinhos diferentes."},
			{ID: "Fantoches Cantores", Base: "A pessoa posando em uma sala cheia de grandes fantoches de feltro, caprichosos e coloridos, que estão cantando."},
			{ID: "Frango Frito Gigante", Base: "A pessoa posando com o braço em volta de um filé de frango de 1,2 metro de altura. Mantenha a expressão facial da pessoa exatamente a mesma."},
			{ID: "Yeti de Surpresa", Base: "Adicione um yeti realista em pé ao lado da pessoa no lado esquerdo da foto, combinando com a iluminação. Mantenha a pose e o rosto da pessoa exatamente os mesmos."},
		},
	},
	TemplateHeadshots: {
		Name:        "Retratos Profissionais",
		Description: "Fotos de perfil profissionais.",
		Icon:        "💼",
		Prompts: []PromptOption{
			{ID: "Terno de Negócios", Base: "vestindo um terno escuro com uma camisa branca impecável"},
			{ID: "Casual Elegante", Base: "vestindo um suéter de malha casual elegante sobre uma camisa de colarinho"},
			{ID: "Profissional Criativo", Base: "vestindo uma gola alta escura"},
			{ID: "Look Corporativo", Base: "vestindo uma camisa social azul clara"},
			{ID: "Moderno e Vibrante", Base: "vestindo um blazer colorido"},
			{ID: "Descontraído", Base: "vestindo uma camiseta simples de alta qualidade sob uma jaqueta casual"},
		},
	},
	TemplateRetroPoster: {
		Name:        "Pôster Retrô",
		Description: "Seja a estrela de um pôster de filme vintage.",
		Icon:        "🎞️",
		Prompts: []PromptOption{
			{ID: "Pôster", Base: "Transforme a foto em um pôster de filme de aventura no estilo dos anos 80."},
		},
	},
	TemplateCyberpunkCity: {
		Name:        "Cidade Cyberpunk",
		Description: "Entre em uma metrópole futurista de neon.",
		Icon:        "🌃",
		Prompts: []PromptOption{
			{ID: "Vista da Rua", Base: "Coloque a pessoa em uma rua movimentada de uma cidade cyberpunk à noite."},
			{ID: "Arranha-céu", Base: "Retrato da pessoa na varanda de um arranha-céu em uma cidade cyberpunk."},
			{ID: "Beco", Base: "A pessoa em um beco escuro e chuvoso iluminado por neon em uma cidade cyberpunk."},
		},
	},
	TemplateOilPainting: {
		Name:        "Pintura a Óleo",
		Description: "Transforme sua foto em uma pintura clássica.",
		Icon:        "🎨",
		Prompts: []PromptOption{
			{ID: "Retrato Clássico", Base: "Recrie a foto como uma pintura a óleo clássica com pinceladas visíveis e texturizadas e cores ricas."},
		},
	},
	TemplateWatercolor: {
		Name:        "Aquarela",
		Description: "Converta sua imagem em arte delicada.",
		Icon:        "🖌️",
		Prompts: []PromptOption{
			{ID: "Lavagem Expressiva", Base: "Recrie a foto como uma pintura em aquarela vibrante e expressiva com cores fluidas e bordas suaves."},
		},
	},
	TemplateSteampunk: {
		Name:        "Universo Steampunk",
		Description: "Reimagine-se na era vitoriana a vapor.",
		Icon:        "⚙️",
		Prompts: []PromptOption{
			{ID: "Inventor", Base: "Transforme a pessoa em um inventor steampunk, completo com óculos de proteção e engrenagens de latão."},
			{ID: "Aviador", Base: "Retrate a pessoa como um aviador steampunk em frente a uma aeronave ornamentada."},
		},
	},
	TemplatePixelArt: {
		Name:        "Pixel Art",
		Description: "Torne-se um personagem de video game retrô.",
		Icon:        "🕹️",
		Prompts: []PromptOption{
			{ID: "Sprite de 16 bits", Base: "Transforme a foto em um sprite de personagem de pixel art de 16 bits, no estilo de um video game de aventura clássico."},
		},
	},
}
