package tabs

func lathePages() []Tab {
	return []Tab{
		{ID: Model, Title: "Modelo 3D"},
		{ID: Components, Title: "Componentes", Content: &Section{
			Heading: "Componentes del torno",
			Items: []string{
				"Bancada: estructura de vigas paralelas sobre la que se desplazan el contrapunto y el soporte.",
				"Cabezal: aloja el husillo, que recibe el giro del motor a través de la polea.",
				"Plato y punto de arrastre: sujetan la pieza y le transmiten el giro.",
				"Contrapunto: sostiene el otro extremo de la pieza con un punto giratorio.",
				"Soporte de herramienta: apoyo sobre el que descansa la gubia durante el corte.",
				"Motor y correa de transmisión: generan y transmiten el movimiento al husillo.",
			},
		}},
		{ID: Operation, Title: "Funcionamiento", Content: &Section{
			Heading: "Cómo funciona",
			Items: []string{
				"El motor hace girar su polea; la correa transmite el giro a la polea del husillo.",
				"La relación entre los diámetros de las poleas fija la velocidad de la pieza.",
				"La pieza queda sujeta entre el punto de arrastre y el punto giratorio.",
				"La herramienta, apoyada en el soporte, retira material mientras la pieza gira.",
			},
		}},
		{ID: Safety, Title: "Seguridad", Content: &Section{
			Heading: "Normas de seguridad",
			Items: []string{
				"Use gafas o pantalla facial en todo momento.",
				"Compruebe que la palanca de bloqueo del contrapunto está apretada antes de encender.",
				"Acerque el soporte de herramienta a la pieza sin que llegue a tocarla.",
				"No lleve ropa suelta, guantes ni joyas cerca de las piezas en movimiento.",
				"Arranque a baja velocidad y aumente solo cuando la pieza esté equilibrada.",
			},
		}},
	}
}
