// Package fixtures carries the built-in reference roster used until a
// directory export is uploaded. Reset restores exactly this set.
package fixtures

import (
	"github.com/tabelio/attendance-backend-go/internal/domain/directory"
)

// DefaultRoster returns a fresh copy of the seed roster. Callers may
// mutate the result freely.
func DefaultRoster() []directory.Entry {
	return []directory.Entry{
		{EmployeeName: "Гальченко Алексей Валентинович", Company: "TOO \"AVC Групп\"", Position: "Начальник службы ПФ", HireDate: "09.11.2020", Status: "Работа"},
		{EmployeeName: "Дюсенов Таирбек Абаевич", Company: "TOO \"AVC Групп\"", Position: "Сервисный инженер", HireDate: "06.08.2024", Status: "Отпуск основной"},
		{EmployeeName: "Ержан Аспандияр Талғатұлы", Company: "TOO \"AVC Групп\"", Position: "Сервисный инженер", HireDate: "09.06.2025", Status: "Работа"},
		{EmployeeName: "Шалагин Евгений Борисович", Company: "TOO \"AVC Групп\"", Position: "Сервисный инженер", HireDate: "13.10.2025", Status: "Работа"},
		{EmployeeName: "Глазачев Александр Геннадьевич", Company: "TOO \"AVC Групп\"", Position: "Начальник службы ПФ", HireDate: "02.11.2020", Status: "Работа"},
		{EmployeeName: "Антюшин Алексей Игоревич", Company: "TOO \"AVC Групп\"", Position: "Ведущий Сервисный Инженер ПФ", HireDate: "05.10.2021", Status: "Работа"},
		{EmployeeName: "Кайдаров Ильяс Владимирович", Company: "TOO \"AVC Групп\"", Position: "Инженер ПФ", HireDate: "05.02.2024", Status: "Работа"},
		{EmployeeName: "Омар Сұлтанбибарыс Дәулетұлы", Company: "TOO \"AVC Групп\"", Position: "Инженер ПФ", HireDate: "01.03.2024", Status: "Работа"},
		{EmployeeName: "Ворошилов Игорь Владимирович", Company: "TOO \"AVC Групп\"", Position: "Заместитель начальника службы ПФ", HireDate: "05.01.2021", Status: "Работа"},
		{EmployeeName: "Бараболя Анатолий Владимирович", Company: "TOO \"AVC Групп\"", Position: "Старший сервисный инженер", HireDate: "02.11.2020", Status: "Работа"},
		{EmployeeName: "Овчинников Вадим Александрович", Company: "TOO \"AVC Групп\"", Position: "Техник по учёту", HireDate: "01.08.2023", Status: "Работа"},
		{EmployeeName: "Сагалбаева Алтын Мунеровна", Company: "TOO \"AVC Групп\"", Position: "Заведующий складом ПФ", HireDate: "01.04.2021", Status: "Отпуск по уходу за ребенком"},
		{EmployeeName: "Гара Руфина Тахировна", Company: "TOO \"AVC Групп\"", Position: "Специалист по работе с персоналом (ПФ)", HireDate: "02.11.2020", Status: "Работа"},
		{EmployeeName: "Байманкулов Адиль Русланович", Company: "TOO \"AVC Групп\"", Position: "Ведущий специалист АХО ПФ", HireDate: "10.04.2023", Status: "Работа"},
		{EmployeeName: "Жакипов Алишер Серикович", Company: "TOO \"AVC Групп\"", Position: "Специалист АХО ПФ", HireDate: "02.05.2024", Status: "Работа"},
		{EmployeeName: "Абдугалимов Дулат Шеризатович", Company: "TOO \"AVC Групп\"", Position: "Административный директор", HireDate: "15.09.2025", Status: "Работа"},
		{EmployeeName: "Драмачёв Михаил Юрьевич", Company: "TOO \"AVC Групп\"", Position: "Инженер по технике безопасности", HireDate: "01.06.2021", Status: "Работа"},
		{EmployeeName: "Абильдинов Алихан Танатович", Company: "TOO \"AVC Групп\"", Position: "Региональный директор", HireDate: "05.01.2021", Status: "Работа"},
		{EmployeeName: "Пузырёв Алексей Васильевич", Company: "TOO \"AVC Production\"", Position: "Директор ВУТ", HireDate: "08.06.2022", Status: "Работа"},
		{EmployeeName: "Бектемирова Шолпан Муратовна", Company: "TOO \"AVC Production\"", Position: "Администратор проектов", HireDate: "28.10.2025", Status: "Работа"},
		{EmployeeName: "Кузьмин Евгений Игоревич", Company: "TOO \"AVC Production\"", Position: "Инженер-электрик ПФ", HireDate: "02.10.2024", Status: "Отпуск основной"},
		{EmployeeName: "Куклин Сергей Сергеевич", Company: "TOO \"AVC Production\"", Position: "Инженер-электрик ПФ", HireDate: "15.09.2025", Status: "Работа"},
		{EmployeeName: "Борзых Иван Андреевич", Company: "TOO \"AVC Production\"", Position: "Ведущий инженер-электрик ПФ", HireDate: "16.01.2023", Status: "Работа"},
		{EmployeeName: "Избакиева Рената Викторовна", Company: "TOO \"AVC Production\"", Position: "Администратор проектов", HireDate: "23.11.2022", Status: "Работа"},
		{EmployeeName: "Табынбаева Айжан Иршековна", Company: "TOO \"AVC Production\"", Position: "Инженер-технолог ВУТ", HireDate: "19.05.2025", Status: "Работа"},
		{EmployeeName: "Избакиев Александр Масимжанович", Company: "TOO \"AVC Production\"", Position: "Руководитель проектов", HireDate: "03.07.2023", Status: "Работа"},
		{EmployeeName: "Паршуков Юрий Алексеевич", Company: "TOO \"AVC Production\"", Position: "Руководитель проектов", HireDate: "01.09.2022", Status: "Работа"},
		{EmployeeName: "Сулейменов Данияр Женысович", Company: "TOO \"AVC Production\"", Position: "Руководитель проектов", HireDate: "04.08.2025", Status: "Работа"},
		{EmployeeName: "Волошина Наталья Викторовна", Company: "TOO \"AVC Production\"", Position: "Ведущий инженер-сметчик", HireDate: "04.07.2022", Status: "Работа"},
		{EmployeeName: "Лобко Иван", Company: "TOO \"AVC Production\"", Position: "Инженер наладчик технологического оборудования", HireDate: "20.05.2024", Status: "Работа"},
		{EmployeeName: "Костоглод Сергей Юрьевич", Company: "TOO \"AVC Production\"", Position: "Ведущий инженер-строитель", HireDate: "01.03.2022", Status: "Работа"},
		{EmployeeName: "Илюбаев Руфат Хасенович", Company: "TOO \"AVC Production\"", Position: "Геодезист ПФ", HireDate: "01.11.2023", Status: "Работа"},
		{EmployeeName: "Калугин Михаил Александрович", Company: "TOO \"AVC Production\"", Position: "Инженер-строитель ПФ", HireDate: "18.07.2022", Status: "Работа"},
		{EmployeeName: "Супрун Игорь Николаевич", Company: "TOO \"AVC Production\"", Position: "Начальник отдела строительства", HireDate: "01.10.2025", Status: "Работа"},
		{EmployeeName: "Трухин Александр Александрович", Company: "TOO \"AVC Production\"", Position: "Специалист ИТ ПФ", HireDate: "13.07.2022", Status: "Работа"},
		{EmployeeName: "Никифоров Вячеслав Викторович", Company: "TOO \"AVC Production\"", Position: "Техник по учёту", HireDate: "18.07.2022", Status: "Работа"},
		{EmployeeName: "Айтказин Адиль Габитович", Company: "TOO \"AVC Production\"", Position: "Специалист по логистике", HireDate: "01.08.2025", Status: "Работа"},
		{EmployeeName: "Гара Артём Николаевич", Company: "TOO \"AVC Production\"", Position: "Ведущий специалист по закупкам и логистике ПФ", HireDate: "17.01.2022", Status: "Работа"},
		{EmployeeName: "Сагалбаева Индира Мунеровна", Company: "TOO \"AVC Production\"", Position: "Оператор склада ПФ", HireDate: "02.05.2024", Status: "Работа"},
		{EmployeeName: "Косаревич Андрей Владимирович", Company: "TOO \"AVC Production\"", Position: "Ведущий инженер АСУТП", HireDate: "24.01.2024", Status: "Работа"},
		{EmployeeName: "Кәкен Әсемгүл Жасұланқызы", Company: "TOO \"AVC Production\"", Position: "Инженер КИПиА", HireDate: "01.08.2024", Status: "Работа"},
		{EmployeeName: "Репин Евгений Иванович", Company: "TOO \"AVC Production\"", Position: "Инженер КИПиА", HireDate: "10.01.2024", Status: "Работа"},
		{EmployeeName: "Галата Иван Игоревич", Company: "TOO \"AVC Production\"", Position: "Начальник отдела ПФ", HireDate: "15.02.2023", Status: "Работа"},
		{EmployeeName: "Сорокин Владимир Дмитриевич", Company: "TOO \"AVC Production\"", Position: "Инженер АСУТП ПФ", HireDate: "16.06.2025", Status: "Работа"},
		{EmployeeName: "Громов Андрей Витальевич", Company: "TOO \"AVC Production\"", Position: "Ведущий инженер КИПиА ПФ", HireDate: "13.05.2022", Status: "Работа"},
		{EmployeeName: "Борисенко Денис Вячеславович", Company: "TOO \"AVC Production\"", Position: "Инженер по входному контролю", HireDate: "10.05.2023", Status: "Работа"},
		{EmployeeName: "Гасымов Шахин Газанфар оглы", Company: "TOO \"AVC Production\"", Position: "Инженер по входному контролю", HireDate: "12.03.2025", Status: "Работа"},
		{EmployeeName: "Кальков Яков Олегович", Company: "TOO \"AVC Production\"", Position: "Инженер по входному контролю", HireDate: "01.03.2023", Status: "Работа"},
		{EmployeeName: "Бодрова Жанна Андреевна", Company: "TOO \"AVC Production\"", Position: "Инженер ПТО ПФ", HireDate: "01.02.2023", Status: "Работа"},
		{EmployeeName: "Жампеисов Жаркын Жанабаевич", Company: "TOO \"AVC Production\"", Position: "Инженер ПТО ПФ", HireDate: "01.02.2022", Status: "Работа"},
		{EmployeeName: "Зайцева Владислава Дмитриевна", Company: "TOO \"AVC Production\"", Position: "Инженер ПТО ПФ", HireDate: "26.09.2025", Status: "Работа"},
		{EmployeeName: "Кабиденова Дана Муратовна", Company: "TOO \"AVC Production\"", Position: "Инженер ПТО ПФ", HireDate: "04.06.2025", Status: "Работа"},
		{EmployeeName: "Петриди Анастасия Ивановна", Company: "TOO \"AVC Production\"", Position: "Инженер ПТО ПФ", HireDate: "01.12.2023", Status: "Отпуск основной"},
		{EmployeeName: "Яловенко Андрей Иванович", Company: "TOO \"AVC Production\"", Position: "Инженер ПТО ПФ", HireDate: "15.08.2025", Status: "Работа"},
		{EmployeeName: "Абдугалимов Дулат Шеризатович", Company: "TOO \"AVC Production\"", Position: "Административный директор", HireDate: "15.09.2025", Status: "Работа"},
		{EmployeeName: "Тагибергенова Дамиля Бауыржановна", Company: "TOO \"AVC Production\"", Position: "Инженер по технике безопасности ПФ", HireDate: "05.04.2024", Status: "Работа"},
		{EmployeeName: "Абильдинов Алихан Танатович", Company: "TOO \"AVC Production\"", Position: "Региональный директор", HireDate: "05.01.2025", Status: "Работа"},
		{EmployeeName: "Сорокина Оксана Владимировна", Company: "TOO \"AVC Production\"", Position: "Офис-менеджер Вут", HireDate: "01.10.2025", Status: "Работа"},
		{EmployeeName: "Лукичёв Виктор Валерьевич", Company: "TOO \"VC Services\"", Position: "Начальник службы ПФ", HireDate: "01.11.2021", Status: "Работа"},
		{EmployeeName: "Сокур Антон Сергеевич", Company: "TOO \"VC Services\"", Position: "Заместитель начальника службы ПФ", HireDate: "15.11.2021", Status: "Работа"},
		{EmployeeName: "Абильдинов Акназар Тасболатович", Company: "TOO \"VC Services\"", Position: "Техник VCS", HireDate: "13.03.2024", Status: "Работа"},
		{EmployeeName: "Батажан Юрий Вячеславович", Company: "TOO \"VC Services\"", Position: "Техник VCS", HireDate: "13.03.2024", Status: "Работа"},
		{EmployeeName: "ШТАРК НИКОЛАЙ ОЛЕГОВИЧ", Company: "TOO \"VC Services\"", Position: "Техник VCS", HireDate: "06.03.2023", Status: "Работа"},
		{EmployeeName: "БЫКОВ АЛЕКСЕЙ АНДРЕЕВИЧ", Company: "TOO \"VC Services\"", Position: "Инженер VCS", HireDate: "22.02.2023", Status: "Работа"},
		{EmployeeName: "Жургембаев Максим Талгатович", Company: "TOO \"VC Services\"", Position: "Инженер VCS", HireDate: "27.01.2023", Status: "Работа"},
		{EmployeeName: "Садовник Станислав Вячеславович", Company: "TOO \"VC Services\"", Position: "Инженер VCS", HireDate: "13.01.2023", Status: "Работа"},
		{EmployeeName: "Курбан Иван Вячеславович", Company: "TOO \"VC Services\"", Position: "Ведущий инженер VCS", HireDate: "10.06.2022", Status: "Работа"},
		{EmployeeName: "Чупин Иван Сергеевич", Company: "TOO \"VC Services\"", Position: "Ведущий инженер VCS", HireDate: "19.11.2021", Status: "Работа"},
		{EmployeeName: "Кнутас Вячеслав Владимирович", Company: "TOO \"VC Services\"", Position: "Директор VCS", HireDate: "05.06.2023", Status: "Работа"},
		{EmployeeName: "Карабалаев Айдар Маратулы", Company: "ТОО \"First Delivery\"", Position: "Старший механик автотранспорта", HireDate: "23.06.2025", Status: "Работа"},
		{EmployeeName: "Дерябин Вадим Сергеевич", Company: "ТОО \"First Delivery\"", Position: "Машинист автокрана 6-разряда", HireDate: "08.10.2025", Status: "Работа"},
		{EmployeeName: "Жампиисов Александр Даукенович", Company: "ТОО \"First Delivery\"", Position: "Машинист крана-манипулятор", HireDate: "14.07.2025", Status: "Работа"},
		{EmployeeName: "Коваленко Юрий Алексеевич", Company: "ТОО \"First Delivery\"", Position: "Машинист автокрана 7-разряда", HireDate: "09.07.2025", Status: "Работа"},
		{EmployeeName: "Абилгазин Кайрат Серикович", Company: "ТОО \"First Delivery\"", Position: "Стропальщик", HireDate: "10.09.2025", Status: "Работа"},
		{EmployeeName: "Макаров Анатолий Олегович", Company: "ТОО \"First Delivery\"", Position: "Стропальщик", HireDate: "18.09.2025", Status: "Работа"},
		{EmployeeName: "Власов Владимир Викторович", Company: "TOO \"FIRST SERVICE\"", Position: "Главный метролог", HireDate: "05.09.2025", Status: "Работа"},
		{EmployeeName: "Еремеев Игорь Рафгатович", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник отдела (07)", HireDate: "04.01.2023", Status: "Работа"},
		{EmployeeName: "Максакова Вероника Анатольевна", Company: "TOO \"CES Kazakhstan\"", Position: "Экономист по материально-техническому снабжению (07)", HireDate: "25.05.2023", Status: "Работа"},
		{EmployeeName: "Соловьев Андрей Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Экономист по материально-техническому снабжению (07)", HireDate: "10.01.2023", Status: "Работа"},
		{EmployeeName: "Дуненбаев Темирлан Бауржанович", Company: "TOO \"CES Kazakhstan\"", Position: "Экономист по материально-техническому снабжению (07)", HireDate: "04.08.2025", Status: "Командировка"},
		{EmployeeName: "Коцуренко Виталий Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по производственному надзору за проектом (07)", HireDate: "20.03.2024", Status: "Командировка"},
		{EmployeeName: "Турмагамбетов Тимур Ризаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Главный специалист по проектам (07)", HireDate: "16.01.2023", Status: "Работа"},
		{EmployeeName: "Денисова Светлана Владимировна", Company: "TOO \"CES Kazakhstan\"", Position: "Техник по учёту (07)", HireDate: "04.12.2023", Status: "Работа"},
		{EmployeeName: "Аглиев Арслан Алимшаийхович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по производственному надзору за проектом (07)", HireDate: "12.06.2025", Status: "Командировка"},
		{EmployeeName: "Зиньков Сергей Борисович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по производственному надзору за проектом (07)", HireDate: "01.06.2023", Status: "Работа"},
		{EmployeeName: "Какимов Руслан Ерланович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по производственному надзору за проектом (07)", HireDate: "12.06.2025", Status: "Командировка"},
		{EmployeeName: "Ермеков Мадияр Ержанович", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник службы (07)", HireDate: "26.01.2023", Status: "Командировка"},
		{EmployeeName: "Усенова Салтанат Канатовна", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по охране окружающей среды (07)", HireDate: "27.01.2025", Status: "Работа"},
		{EmployeeName: "Семигулин Шамиль Рашидович", Company: "TOO \"CES Kazakhstan\"", Position: "Техник по работе с технической документацией (07)", HireDate: "03.01.2024", Status: "Работа"},
		{EmployeeName: "Алиев Расул Халиевич", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по безопасности и охране труда (07)", HireDate: "01.04.2025", Status: "Работа"},
		{EmployeeName: "Ажайпов Азамат Максутович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по безопасности и охране труда (07)", HireDate: "14.06.2025", Status: "Работа"},
		{EmployeeName: "Коловников Артур Валерьевич", Company: "TOO \"CES Kazakhstan\"", Position: "Заместитель директора (07)", HireDate: "04.01.2023", Status: "Командировка"},
		{EmployeeName: "Бурцев Денис Николаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Главный механик (07)", HireDate: "11.07.2023", Status: "Командировка"},
		{EmployeeName: "Руденко Денис Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Главный специалист - руководитель проекта (07)", HireDate: "10.01.2023", Status: "Командировка"},
		{EmployeeName: "Сироткин Дмитрий Николаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Главный специалист - руководитель проекта (07)", HireDate: "23.01.2023", Status: "Командировка"},
		{EmployeeName: "Соловьев Максим Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Главный специалист - руководитель проекта (07)", HireDate: "03.01.2024", Status: "Работа"},
		{EmployeeName: "Шанашев Берден Дауытбаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Главный специалист - руководитель проекта (07)", HireDate: "23.05.2025", Status: "Командировка"},
		{EmployeeName: "Шаповалов Павел Александрович", Company: "TOO \"CES Kazakhstan\"", Position: "Главный специалист - руководитель проекта (07)", HireDate: "16.03.2023", Status: "Командировка"},
		{EmployeeName: "Сунтаев Адлет Серикович", Company: "TOO \"CES Kazakhstan\"", Position: "Главный инженер (07)", HireDate: "09.01.2023", Status: "Командировка"},
		{EmployeeName: "Расулов Нурзат Абдуашимович", Company: "TOO \"CES Kazakhstan\"", Position: "Советник директора по общим вопросам (07)", HireDate: "08.11.2021", Status: "Работа"},
		{EmployeeName: "Плясунов Евгений Петрович", Company: "TOO \"CES Kazakhstan\"", Position: "Директор (07)", HireDate: "01.02.2023", Status: "Командировка"},
		{EmployeeName: "Сорокотяга Валентина Михайловна", Company: "TOO \"CES Kazakhstan\"", Position: "Экономист по труду (07)", HireDate: "10.01.2023", Status: "Работа"},
		{EmployeeName: "Мызовская Арина Владимировна", Company: "TOO \"CES Kazakhstan\"", Position: "Специалист по интегрированной системе менеджмента (07)", HireDate: "11.01.2023", Status: "Командировка"},
		{EmployeeName: "Манкиева Светлана Александровна", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий юрисконсульт (07)", HireDate: "16.09.2024", Status: "Работа"},
		{EmployeeName: "Кадикина Элла Владимировна", Company: "TOO \"CES Kazakhstan\"", Position: "Специалист по кадрам (07)", HireDate: "14.03.2023", Status: "Работа"},
		{EmployeeName: "Мажитова Аида Коблановна", Company: "TOO \"CES Kazakhstan\"", Position: "Специалист по кадрам (07)", HireDate: "05.07.2023", Status: "Работа"},
		{EmployeeName: "Мерецкий Евгений Викторович", Company: "TOO \"CES Kazakhstan\"", Position: "Операционный координатор по работе с заказчиками (07)", HireDate: "17.04.2023", Status: "Командировка"},
		{EmployeeName: "Кучеровская Жемис Айназаровна", Company: "TOO \"CES Kazakhstan\"", Position: "Главный сварщик (07)", HireDate: "21.06.2024", Status: "Командировка"},
		{EmployeeName: "Пак Виктор Витальевич", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий инженер входного контроля (07)", HireDate: "23.05.2023", Status: "Командировка"},
		{EmployeeName: "Жумагазиев Даниял Муратович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер входного контроля (07)", HireDate: "24.09.2025", Status: "Работа"},
		{EmployeeName: "Жұмасиянова Мақпал Асқарқызы", Company: "TOO \"CES Kazakhstan\"", Position: "Офис - менеджер (07)", HireDate: "08.01.2024", Status: "Работа"},
		{EmployeeName: "Гуляева Елена Викторовна", Company: "TOO \"CES Kazakhstan\"", Position: "Главный экономист (07)", HireDate: "29.07.2024", Status: "Работа"},
		{EmployeeName: "Микитюк Маргарита Эдуардовна", Company: "TOO \"CES Kazakhstan\"", Position: "Техник по учету (07)", HireDate: "07.03.2023", Status: "Работа"},
		{EmployeeName: "Фадеева Елена Николаевна", Company: "TOO \"CES Kazakhstan\"", Position: "Главный бухгалтер (07)", HireDate: "01.03.2023", Status: "Работа"},
		{EmployeeName: "Айтбаева Карлыгаш Кахармановна", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий бухгалтер (07)", HireDate: "03.04.2023", Status: "Работа"},
		{EmployeeName: "Майер Наталья Александровна", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий бухгалтер (07)", HireDate: "19.08.2024", Status: "Работа"},
		{EmployeeName: "Менщикова Мария Сергеевна", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий бухгалтер (07)", HireDate: "01.03.2023", Status: "Работа"},
		{EmployeeName: "Воронкович Александр Сергеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник цеха (07)", HireDate: "17.03.2023", Status: "Командировка"},
		{EmployeeName: "Афанасьев Руслан Геннадьевич", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник участка (07)", HireDate: "19.04.2023", Status: "Работа"},
		{EmployeeName: "Бисембаев Суюндык Ермекович", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник участка (07)", HireDate: "13.08.2025", Status: "Работа"},
		{EmployeeName: "Семёнов Вадим Сергеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник участка (07)", HireDate: "16.03.2023", Status: "Работа"},
		{EmployeeName: "Флейшман Игорь Анатольевич", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник участка (07)", HireDate: "16.03.2023", Status: "Работа"},
		{EmployeeName: "Шадрин Виталий Викторович", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник участка (07)", HireDate: "04.01.2023", Status: "Командировка"},
		{EmployeeName: "Байнев Зиамат Оразалиевич", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "13.10.2025", Status: "Командировка"},
		{EmployeeName: "Мазных Данил Витальевич", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "05.06.2023", Status: "Работа"},
		{EmployeeName: "Шакенов Мурат Нуржанович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "05.09.2025", Status: "Работа"},
		{EmployeeName: "Арынгазинов Асылхан Талгатович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.03.2025", Status: "Работа"},
		{EmployeeName: "Арынгазинов Кадыр Талгатович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.03.2025", Status: "Работа"},
		{EmployeeName: "Бекпалов Амангельды Кадиевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "25.02.2025", Status: "Работа"},
		{EmployeeName: "Даиров Каир Аманжолович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "25.02.2025", Status: "Работа"},
		{EmployeeName: "Дегтярёв Владимир Николаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "10.04.2024", Status: "Работа"},
		{EmployeeName: "Евсиков Юрий Иванович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "01.03.2023", Status: "Работа"},
		{EmployeeName: "Егоров Владимир Валерьевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "14.11.2023", Status: "Работа"},
		{EmployeeName: "Жамалиденов Самат Зейноллинович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "05.03.2025", Status: "Работа"},
		{EmployeeName: "Жанзаков Садак Имангазиевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "25.02.2025", Status: "Работа"},
		{EmployeeName: "Жигампар Канат", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.03.2025", Status: "Работа"},
		{EmployeeName: "Искаков Кабдрахман Тукенович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.03.2025", Status: "Работа"},
		{EmployeeName: "Каирбеков Каиргельды Зайырович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.04.2023", Status: "Работа"},
		{EmployeeName: "Киселев Геннадий Александрович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "21.04.2023", Status: "Работа"},
		{EmployeeName: "Костоев Тимур Ахметович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "11.10.2023", Status: "Работа"},
		{EmployeeName: "Кутовский Александр Викторович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.05.2024", Status: "Работа"},
		{EmployeeName: "Лучишин Виталий Ярославович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.04.2023", Status: "Работа"},
		{EmployeeName: "Мунайтбасов Сунгат Абаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.03.2025", Status: "Работа"},
		{EmployeeName: "Романченко Сергей Александрович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "15.05.2023", Status: "Работа"},
		{EmployeeName: "Сатыбаев Болат Кайркешевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.03.2025", Status: "Работа"},
		{EmployeeName: "Сердитов Евгений Сергеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "05.03.2025", Status: "Работа"},
		{EmployeeName: "Тоқтаубаев Нұржан Тоқтаубайұлы", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "21.04.2023", Status: "Работа"},
		{EmployeeName: "Шаповалов Валерий Васильевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.04.2023", Status: "Работа"},
		{EmployeeName: "Швенк Александр Александрович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.04.2023", Status: "Работа"},
		{EmployeeName: "Ахметжанов Кенжекан Зейнулович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "06.09.2023", Status: "Работа"},
		{EmployeeName: "Бондаренко Сергей Васильевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "27.03.2024", Status: "Работа"},
		{EmployeeName: "Евдокимов Сергей Викторович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "15.05.2023", Status: "Работа"},
		{EmployeeName: "Ергазин Оразбек Курманович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "01.07.2024", Status: "Работа"},
		{EmployeeName: "Змиевской Александр Викторович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "26.06.2024", Status: "Работа"},
		{EmployeeName: "Каиржанов Ерлан Серикович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.05.2024", Status: "Работа"},
		{EmployeeName: "Кошкарев Ескен Шарапович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "14.11.2023", Status: "Работа"},
		{EmployeeName: "Кузкенов Ренат Ештаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "28.02.2024", Status: "Работа"},
		{EmployeeName: "Ногайбеков Ерлан Канатович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.05.2024", Status: "Работа"},
		{EmployeeName: "Родиков Денис Сергеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "15.05.2024", Status: "Работа"},
		{EmployeeName: "Слободян Александр Михайлович", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "14.08.2023", Status: "Работа"},
		{EmployeeName: "Сусликов Евгений Валерьевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.05.2024", Status: "Работа"},
		{EmployeeName: "Табола Руслан Анатольевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "03.04.2024", Status: "Работа"},
		{EmployeeName: "Такиянов Айбар Еркешевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "19.06.2024", Status: "Работа"},
		{EmployeeName: "Щуровский Михаил Юрьевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь по ремонту технологических установок (07)", HireDate: "17.05.2024", Status: "Работа"},
		{EmployeeName: "Айдарханов Алмас Темирболатович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "18.08.2025", Status: "Работа"},
		{EmployeeName: "Ахметов Ербол Садирбаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "19.04.2024", Status: "Работа"},
		{EmployeeName: "Вейц Александр Евгеньевич", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "10.05.2023", Status: "Работа"},
		{EmployeeName: "Исабеков Жумабай Кудайбергенович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "24.04.2024", Status: "Работа"},
		{EmployeeName: "Пилипенко Денис Олегович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "18.08.2025", Status: "Работа"},
		{EmployeeName: "Пискунов Михаил Алексеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "24.11.2023", Status: "Командировка"},
		{EmployeeName: "Рахметов Жанат Садыкович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "24.11.2023", Status: "Работа"},
		{EmployeeName: "Савельев Вячеслав Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "18.08.2025", Status: "Работа"},
		{EmployeeName: "Трофимов Денис Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "11.09.2023", Status: "Работа"},
		{EmployeeName: "Сизов Валерий Валерьевич", Company: "TOO \"CES Kazakhstan\"", Position: "Старший мастер (07)", HireDate: "12.06.2023", Status: "Работа"},
		{EmployeeName: "Горохов Андрей Сергеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Оператор - термист на передвижных термических установках (07)", HireDate: "01.03.2023", Status: "Работа"},
		{EmployeeName: "Тимченко Игорь Петрович", Company: "TOO \"CES Kazakhstan\"", Position: "Оператор - термист на передвижных термических установках (07)", HireDate: "01.03.2023", Status: "Отпуск неоплачиваемый по законодательству"},
		{EmployeeName: "Айтуаров Алтынбек Бозжигитович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "21.04.2023", Status: "Работа"},
		{EmployeeName: "Ефремов Александр Викторович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "12.08.2024", Status: "Работа"},
		{EmployeeName: "Мазепа Евгений Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "17.04.2023", Status: "Работа"},
		{EmployeeName: "Острокостов Валерий Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "11.10.2023", Status: "Работа"},
		{EmployeeName: "Деряев Павел Николаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "06.05.2024", Status: "Работа"},
		{EmployeeName: "Кайдаров Берик Шинтемирович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "09.04.2025", Status: "Работа"},
		{EmployeeName: "Кучер Егор Алексеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Монтажник технологических трубопроводов и металлоконструкций (07)", HireDate: "26.05.2025", Status: "Отсутствие по невыясненным причинам"},
		{EmployeeName: "Хасанов Максут Зуфарович", Company: "TOO \"CES Kazakhstan\"", Position: "Монтажник технологических трубопроводов и металлоконструкций (07)", HireDate: "09.09.2025", Status: "Работа"},
		{EmployeeName: "Абдульдинов Бакытжан Серикович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "24.06.2025", Status: "Работа"},
		{EmployeeName: "Абдульдинов Серик Сагидуллинович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "24.06.2025", Status: "Работа"},
		{EmployeeName: "Гарник Виктор Михайлович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "09.09.2025", Status: "Работа"},
		{EmployeeName: "Ибраев Тулеген Даутович", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "05.09.2025", Status: "Командировка"},
		{EmployeeName: "Авдиенко Юлия Владимировна", Company: "TOO \"CES Kazakhstan\"", Position: "Техник по учёту (07)", HireDate: "18.04.2023", Status: "Работа"},
		{EmployeeName: "Бондаренко Алексей Юрьевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь - электрик по ремонту электрооборудования (07)", HireDate: "14.11.2023", Status: "Командировка"},
		{EmployeeName: "Нурхаев Кайрат Камзаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Слесарь - электрик по ремонту электрооборудования (07)", HireDate: "08.02.2024", Status: "Командировка"},
		{EmployeeName: "Дмитрашко Петр Борисович", Company: "TOO \"CES Kazakhstan\"", Position: "Водитель легкового автомобиля (07)", HireDate: "09.01.2024", Status: "Работа"},
		{EmployeeName: "Ильясов Виталий Леонидович", Company: "TOO \"CES Kazakhstan\"", Position: "Водитель - экспедитор (07)", HireDate: "24.05.2024", Status: "Работа"},
		{EmployeeName: "Адамов Ерлан Калиевич", Company: "TOO \"CES Kazakhstan\"", Position: "Монтажник технологических трубопроводов и металлоконструкций (07)", HireDate: "25.09.2025", Status: "Работа"},
		{EmployeeName: "Кармамбаев Жанат Канапьянович", Company: "TOO \"CES Kazakhstan\"", Position: "Монтажник технологических трубопроводов и металлоконструкций (07)", HireDate: "25.09.2025", Status: "Работа"},
		{EmployeeName: "Кожмагамбетов Берик Серикович", Company: "TOO \"CES Kazakhstan\"", Position: "Монтажник технологических трубопроводов и металлоконструкций (07)", HireDate: "25.09.2025", Status: "Работа"},
		{EmployeeName: "Айдашев Кабит Жумашевич", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "25.09.2025", Status: "Работа"},
		{EmployeeName: "Белозуб Александр Олегович", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник службы (07)", HireDate: "11.01.2023", Status: "Командировка"},
		{EmployeeName: "Мельник Игорь Николаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий инженер по планированию (07)", HireDate: "27.02.2023", Status: "Командировка"},
		{EmployeeName: "Ващенко Елена Владивленовна", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий инженер по проектно-сметной работе (07)", HireDate: "01.02.2023", Status: "Работа"},
		{EmployeeName: "Ненашева Наталья Андреевна", Company: "TOO \"CES Kazakhstan\"", Position: "Ведущий инженер по проектно-сметной работе (07)", HireDate: "13.02.2023", Status: "Работа"},
		{EmployeeName: "Кривохижина Алла Николаевна", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по проектно-сметным работам (07)", HireDate: "14.03.2023", Status: "Работа"},
		{EmployeeName: "Молоткова Анна Львовна", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по проектно-сметным работам (07)", HireDate: "14.03.2023", Status: "Отпуск неоплачиваемый по законодательству"},
		{EmployeeName: "Гасс Юлия Андреевна", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по подготовке производства (07)", HireDate: "08.08.2023", Status: "Работа"},
		{EmployeeName: "Сподаренко Екатерина Владимировна", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по подготовке производства (07)", HireDate: "14.02.2023", Status: "Работа"},
		{EmployeeName: "Шкуратская Татьяна Николаевна", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по подготовке производства (07)", HireDate: "13.03.2023", Status: "Отпуск по уходу за ребенком"},
		{EmployeeName: "Эберц Виталий Николаевич", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по подготовке производства (07)", HireDate: "06.03.2024", Status: "Работа"},
		{EmployeeName: "Семёнов Олег Вадимович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по подготовке производства (07)", HireDate: "04.04.2023", Status: "Работа"},
		{EmployeeName: "Ким Александр Петрович", Company: "TOO \"CES Kazakhstan\"", Position: "Инженер по подготовке производства (07)", HireDate: "06.08.2025", Status: "Работа"},
		{EmployeeName: "Кубайдолла Максат Муратулы", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "26.03.2025", Status: "Отпуск неоплачиваемый по законодательству"},
		{EmployeeName: "Насыров Куаныш Кабылбариевич", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник цеха (07)", HireDate: "09.03.2023", Status: "Работа"},
		{EmployeeName: "Кунгаев Денис Алексеевич", Company: "TOO \"CES Kazakhstan\"", Position: "Начальник участка (07)", HireDate: "09.03.2023", Status: "Отпуск основной"},
		{EmployeeName: "Аликеев Равиль Шухратович", Company: "TOO \"CES Kazakhstan\"", Position: "Производитель работ (07)", HireDate: "09.03.2023", Status: "Работа"},
		{EmployeeName: "Кузганов Ануар Ержанович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "01.07.2024", Status: "Отпуск неоплачиваемый по законодательству"},
		{EmployeeName: "Левашов Евгений Владимирович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "07.04.2023", Status: "Работа"},
		{EmployeeName: "Семигулин Хаджикарим Рашидович", Company: "TOO \"CES Kazakhstan\"", Position: "Мастер (07)", HireDate: "09.09.2025", Status: "Работа"},
		{EmployeeName: "Польша Солтаншарав", Company: "TOO \"CES Kazakhstan\"", Position: "Электрогазосварщик (07)", HireDate: "16.05.2023", Status: "Работа"},
		{EmployeeName: "Айгазинов Талапбек Еглашевич", Company: "TOO \"CES Kazakhstan\"", Position: "Бетонщик (07)", HireDate: "12.06.2023", Status: "Работа"},
		{EmployeeName: "Аубакиров Каиргельды Набиевич", Company: "TOO \"CES Kazakhstan\"", Position: "Бетонщик (07)", HireDate: "12.06.2023", Status: "Отпуск основной"},
	}
}
