package model

// VocabularyEntry 每日词汇表中的一项
// swagger:model VocabularyEntry
type VocabularyEntry struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

var PracticePrompts = map[Language][]string{
	English: {
		"Tell me about your favorite hobby.",
		"Describe your ideal vacation.",
		"What did you do last weekend?",
		"Talk about your favorite movie or TV show.",
		"Describe your morning routine.",
	},
	Spanish: {
		"Háblame de tu pasatiempo favorito.",
		"Describe tus vacaciones ideales.",
		"¿Qué hiciste el fin de semana pasado?",
		"Habla sobre tu película o programa de televisión favorito.",
		"Describe tu rutina matutina.",
	},
	French: {
		"Parle-moi de ton passe-temps préféré.",
		"Décris tes vacances idéales.",
		"Qu'as-tu fait le week-end dernier ?",
		"Parle de ton film ou émission de télévision préféré.",
		"Décris ta routine matinale.",
	},
	German: {
		"Erzähl mir von deinem Lieblingshobby.",
		"Beschreibe deinen idealen Urlaub.",
		"Was hast du letztes Wochenende gemacht?",
		"Sprich über deinen Lieblingsfilm oder deine Lieblingssendung.",
		"Beschreibe deine Morgenroutine.",
	},
}

var VocabularyLists = map[Language][]VocabularyEntry{
	English: {
		{Word: "Serendipity", Definition: "The occurrence of events by chance in a happy or beneficial way", Example: "Finding a perfect book while looking for something else was pure serendipity."},
		{Word: "Eloquent", Definition: "Fluent or persuasive in speaking or writing", Example: "Her eloquent speech moved the entire audience."},
		{Word: "Resilience", Definition: "The capacity to recover quickly from difficulties", Example: "His resilience helped him overcome many challenges in life."},
		{Word: "Meticulous", Definition: "Showing great attention to detail", Example: "She is meticulous about keeping records of all transactions."},
		{Word: "Pragmatic", Definition: "Dealing with things sensibly and realistically", Example: "We need a pragmatic approach to solve this problem."},
		{Word: "Ephemeral", Definition: "Lasting for a very short time", Example: "The beauty of cherry blossoms is ephemeral, lasting only a few days."},
		{Word: "Ambivalent", Definition: "Having mixed feelings or contradictory ideas", Example: "She felt ambivalent about moving to a new city."},
		{Word: "Ubiquitous", Definition: "Present, appearing, or found everywhere", Example: "Smartphones have become ubiquitous in modern society."},
		{Word: "Paradigm", Definition: "A typical example or pattern of something", Example: "This discovery represents a paradigm shift in our understanding."},
		{Word: "Juxtapose", Definition: "Place or deal with close together for contrasting effect", Example: "The article juxtaposes the lives of the rich and the poor."},
	},
	Spanish: {
		{Word: "Efímero", Definition: "Que dura poco tiempo o es pasajero", Example: "La belleza de las flores es efímera."},
		{Word: "Serendipia", Definition: "Hallazgo valioso que se produce de manera accidental", Example: "Conocer a mi mejor amigo fue una serendipia."},
		{Word: "Resiliencia", Definition: "Capacidad para adaptarse a situaciones adversas", Example: "Su resiliencia le permitió superar momentos difíciles."},
		{Word: "Meticuloso", Definition: "Que muestra gran atención al detalle", Example: "Es un trabajador meticuloso que nunca comete errores."},
		{Word: "Pragmático", Definition: "Que se basa en la práctica y utilidad", Example: "Necesitamos un enfoque pragmático para resolver este problema."},
		{Word: "Elocuente", Definition: "Que habla o se expresa con facilidad y de modo persuasivo", Example: "Su discurso elocuente conmovió a todos."},
		{Word: "Ambivalente", Definition: "Que presenta dos interpretaciones o valores diferentes", Example: "Tengo sentimientos ambivalentes sobre ese tema."},
		{Word: "Ubicuo", Definition: "Que está presente en todas partes al mismo tiempo", Example: "La tecnología es ubicua en nuestra sociedad moderna."},
		{Word: "Paradigma", Definition: "Ejemplo o modelo de algo", Example: "Este descubrimiento representa un cambio de paradigma."},
		{Word: "Yuxtaponer", Definition: "Poner una cosa junto a otra", Example: "El artista yuxtapone colores brillantes y oscuros."},
	},
	French: {
		{Word: "Sérendipité", Definition: "Découverte heureuse faite par hasard", Example: "Trouver ce livre rare était une sérendipité."},
		{Word: "Éloquent", Definition: "Qui s'exprime avec aisance et de façon persuasive", Example: "Son discours éloquent a ému tout le public."},
		{Word: "Résilience", Definition: "Capacité à surmonter les chocs et les traumatismes", Example: "Sa résilience lui a permis de surmonter cette épreuve."},
		{Word: "Méticuleux", Definition: "Qui montre un grand souci du détail", Example: "Il est méticuleux dans son travail."},
		{Word: "Pragmatique", Definition: "Qui est orienté vers l'action pratique", Example: "Nous avons besoin d'une approche pragmatique."},
		{Word: "Éphémère", Definition: "Qui ne dure qu'un temps très court", Example: "La beauté des fleurs est éphémère."},
		{Word: "Ambivalent", Definition: "Qui présente deux aspects ou valeurs contradictoires", Example: "J'ai des sentiments ambivalents à ce sujet."},
		{Word: "Ubiquitaire", Definition: "Qui est présent partout", Example: "Les smartphones sont devenus ubiquitaires."},
		{Word: "Paradigme", Definition: "Modèle de référence", Example: "Cette découverte représente un changement de paradigme."},
		{Word: "Juxtaposer", Definition: "Placer des éléments côte à côte", Example: "L'artiste juxtapose des couleurs contrastées."},
	},
	German: {
		{Word: "Serendipität", Definition: "Glücklicher Zufall, bei dem man etwas findet, was man nicht gesucht hat", Example: "Die Entdeckung war reine Serendipität."},
		{Word: "Eloquent", Definition: "Redegewandt, ausdrucksstark", Example: "Seine eloquente Rede beeindruckte alle Anwesenden."},
		{Word: "Resilienz", Definition: "Psychische Widerstandsfähigkeit", Example: "Ihre Resilienz half ihr, die schwierige Zeit zu überstehen."},
		{Word: "Akribisch", Definition: "Sehr genau und sorgfältig", Example: "Er arbeitet akribisch an jedem Detail."},
		{Word: "Pragmatisch", Definition: "Praktisch orientiert, sachbezogen", Example: "Wir brauchen einen pragmatischen Ansatz."},
		{Word: "Ephemer", Definition: "Kurzlebig, flüchtig", Example: "Die Schönheit der Kirschblüten ist ephemer."},
		{Word: "Ambivalent", Definition: "Zwiespältig, gegensätzliche Gefühle habend", Example: "Ich bin ambivalent, was dieses Thema betrifft."},
		{Word: "Ubiquitär", Definition: "Allgegenwärtig, überall vorkommend", Example: "Smartphones sind heutzutage ubiquitär."},
		{Word: "Paradigma", Definition: "Denkmuster, Beispiel", Example: "Diese Entdeckung stellt einen Paradigmenwechsel dar."},
		{Word: "Juxtaponieren", Definition: "Nebeneinanderstellen zum Vergleich", Example: "Der Künstler juxtaponiert helle und dunkle Farben."},
	},
}
