package catalog

var defaultRooms = []Room{
	{ID: "R1", Name: "Sala de Reunião 1", Capacity: 8, Type: "Reunião", Floor: "1º andar"},
	{ID: "R2", Name: "Sala de Reunião 2", Capacity: 12, Type: "Reunião", Floor: "2º andar"},
	{ID: "LAB", Name: "Laboratório", Capacity: 20, Type: "Aula", Floor: "Térreo"},
	{ID: "AUD", Name: "Auditório", Capacity: 60, Type: "Evento", Floor: "Térreo"},
	{ID: "VID", Name: "Sala de Vídeo", Capacity: 15, Type: "Mídia", Floor: "1º andar"},
	{ID: "TRE", Name: "Sala de Treinamento", Capacity: 25, Type: "Treino", Floor: "2º andar"},
}

// no 12:00 slot: lunch break
var defaultSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}
