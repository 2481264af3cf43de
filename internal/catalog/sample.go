package catalog

// SampleProducts returns the built-in demo catalog used when both the
// remote source and the import store come back empty. It keeps the
// storefront browsable in demo environments and drives the end-to-end
// tests.
func SampleProducts() []Product {
	return []Product{
		{ID: "1", Name: "BR FOR CAT VET CONTROL DE PESO 500GR", Category: "Alimento para Gatos", Price: 20400, Stock: 50, Rating: 4.8, Description: "Alimento con balance adecuado de nutrientes que reduce la formación de bolas de pelo.", PetType: "Gatos", Source: SourceRemote},
		{ID: "2", Name: "Collar Reflectivo Ajustable", Category: "Accesorios", Price: 15900, Stock: 40, Rating: 4.2, Description: "Collar con banda reflectiva para paseos nocturnos.", PetType: "Perros", Source: SourceRemote},
		{ID: "3", Name: "Arena Aglomerante Premium 10KG", Category: "Arena para Gatos", Price: 38500, Stock: 25, Rating: 4.5, Description: "Arena de bentonita con control de olores.", PetType: "Gatos", Source: SourceRemote},
		{ID: "4", Name: "Royal Canin Alimento Gato Adulto 1.5KG", Category: "Alimento para Gatos", Price: 89900, Stock: 30, Rating: 4.9, Description: "Nutrición completa para gatos adultos.", PetType: "Gatos", Source: SourceRemote},
		{ID: "5", Name: "Juguete Cuerda Trenzada", Category: "Juguetes para Perros", Price: 12300, Stock: 60, Rating: 4.1, Description: "Cuerda resistente para juego de tira y afloje.", PetType: "Perros", Source: SourceRemote},
		{ID: "6", Name: "Chunky Snacks Carne 250GR", Category: "Snacks para Perros", Price: 18700, Stock: 0, Rating: 4.3, Description: "Galletas horneadas de carne de res.", PetType: "Perros", Source: SourceRemote},
		{ID: "7", Name: "Hills Alimento Perro Cachorro 2KG", Category: "Alimento para Perros", Price: 112500, Stock: 18, Rating: 4.7, Description: "Desarrollado para el crecimiento saludable del cachorro.", PetType: "Perros", Source: SourceRemote},
		{ID: "8", Name: "Rascador Torre con Hamaca", Category: "Accesorios", Price: 156000, Stock: 8, Rating: 4.6, Description: "Torre rascadora con plataformas y hamaca.", PetType: "Gatos", Source: SourceRemote},
		{ID: "9", Name: "Shampoo Hipoalergénico 500ML", Category: "Higiene y Cuidado", Price: 24900, Stock: 35, Rating: 4.4, Description: "Fórmula suave para piel sensible.", PetType: "Perros", Source: SourceRemote},
		{ID: "10", Name: "Pro Plan Alimento Gato Esterilizado 3KG", Category: "Alimento para Gatos", Price: 134900, Stock: 22, Rating: 4.8, Description: "Receta para gatos esterilizados con pollo.", PetType: "Gatos", Source: SourceRemote},
		{ID: "11", Name: "Pecera Kit Inicial 20L", Category: "Accesorios", Price: 98000, Stock: 5, Rating: 4.0, Description: "Kit con filtro y luz LED para peces.", PetType: "Peces", Source: SourceRemote},
		{ID: "12", Name: "BR FOR DOG Adulto Razas Pequeñas 1KG", Category: "Alimento para Perros", Price: 32800, Stock: 45, Rating: 4.5, Description: "Alimento balanceado para razas pequeñas.", PetType: "Perros", Source: SourceRemote},
		{ID: "13", Name: "Juguete Ratón con Catnip", Category: "Juguetes para Gatos", Price: 8900, Stock: 80, Rating: 4.2, Description: "Ratón de felpa relleno de catnip natural.", PetType: "Gatos", Source: SourceRemote},
		{ID: "14", Name: "Correa Retráctil 5M", Category: "Accesorios", Price: 42700, Stock: 0, Rating: 4.3, Description: "Correa retráctil con freno de seguridad.", PetType: "Perros", Source: SourceRemote},
		{ID: "15", Name: "Chunky Snacks Pollo 250GR", Category: "Snacks para Perros", Price: 18700, Stock: 55, Rating: 4.4, Description: "Galletas crujientes sabor pollo.", PetType: "Perros", Source: SourceRemote},
		{ID: "16", Name: "Agility Gold Alimento Perro Adulto 8KG", Category: "Alimento para Perros", Price: 189000, Stock: 12, Rating: 4.9, Description: "Proteína de alta digestibilidad para perros activos.", PetType: "Perros", Source: SourceRemote},
		{ID: "17", Name: "Arena Perfumada Lavanda 5KG", Category: "Arena para Gatos", Price: 21500, Stock: 28, Rating: 4.1, Description: "Aglomerante con aroma a lavanda.", PetType: "Gatos", Source: SourceRemote},
		{ID: "18", Name: "Cama Ortopédica Talla M", Category: "Accesorios", Price: 145000, Stock: 10, Rating: 4.7, Description: "Espuma viscoelástica para descanso articular.", PetType: "Perros", Source: SourceRemote},
		{ID: "19", Name: "Hills Alimento Gato Senior 1.8KG", Category: "Alimento para Gatos", Price: 97400, Stock: 16, Rating: 4.6, Description: "Cuidado renal y articular para gatos mayores.", PetType: "Gatos", Source: SourceRemote},
		{ID: "20", Name: "Snacks Dentales Menta x7", Category: "Snacks para Perros", Price: 16200, Stock: 70, Rating: 4.3, Description: "Barras dentales que reducen el sarro.", PetType: "Perros", Source: SourceRemote},
		{ID: "21", Name: "Jaula para Aves Mediana", Category: "Accesorios", Price: 132000, Stock: 6, Rating: 4.2, Description: "Jaula con comederos y columpio incluidos.", PetType: "Aves", Source: SourceRemote},
		{ID: "22", Name: "Gotas Óticas 30ML", Category: "Higiene y Cuidado", Price: 27300, Stock: 33, Rating: 4.0, Description: "Solución limpiadora para oídos.", PetType: "Perros", Source: SourceRemote},
		{ID: "23", Name: "Royal Canin Alimento Perro Adulto 7.5KG", Category: "Alimento para Perros", Price: 215000, Stock: 14, Rating: 4.8, Description: "Fórmula completa para perros adultos de todas las razas.", PetType: "Perros", Source: SourceRemote},
		{ID: "24", Name: "Transportadora Rígida Talla S", Category: "Accesorios", Price: 88600, Stock: 9, Rating: 4.5, Description: "Transportadora ventilada aprobada para viajes.", PetType: "Gatos", Source: SourceRemote},
		{ID: "25", Name: "Juguete Pelota Dispensadora", Category: "Juguetes para Perros", Price: 26400, Stock: 48, Rating: 4.4, Description: "Pelota que libera premios durante el juego.", PetType: "Perros", Source: SourceRemote},
		{ID: "26", Name: "BR FOR CAT Gatitos 500GR", Category: "Alimento para Gatos", Price: 20400, Stock: 0, Rating: 4.7, Description: "Alimento rico en proteína para gatitos en crecimiento.", PetType: "Gatos", Source: SourceRemote},
		{ID: "27", Name: "Antipulgas Pipeta 3ML", Category: "Higiene y Cuidado", Price: 35800, Stock: 40, Rating: 4.6, Description: "Pipeta de protección mensual contra pulgas.", PetType: "Perros", Source: SourceRemote},
		{ID: "28", Name: "Comedero Doble Acero", Category: "Accesorios", Price: 19900, Stock: 52, Rating: 4.1, Description: "Comedero antideslizante de acero inoxidable.", PetType: "General", Source: SourceRemote},
		{ID: "29", Name: "Pro Plan Alimento Perro Senior 3KG", Category: "Alimento para Perros", Price: 128700, Stock: 11, Rating: 4.7, Description: "Receta para longevidad con antioxidantes.", PetType: "Perros", Source: SourceRemote},
		{ID: "30", Name: "Arena Cristal Sílice 3.8L", Category: "Arena para Gatos", Price: 44900, Stock: 0, Rating: 4.4, Description: "Cristales absorbentes de máxima duración.", PetType: "Gatos", Source: SourceRemote},
	}
}
