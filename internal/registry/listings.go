package registry

// nseListings is the bundled NSE ticker→company table. In production this
// would be refreshed from an exchange feed; the static table covers the
// Nifty 50 plus the most traded mid caps.
var nseListings = map[string]string{
	// Nifty 50
	"ADANIENT": "Adani Enterprises", "ADANIPORTS": "Adani Ports", "APOLLOHOSP": "Apollo Hospitals",
	"ASIANPAINT": "Asian Paints", "AXISBANK": "Axis Bank", "BAJAJ-AUTO": "Bajaj Auto",
	"BAJFINANCE": "Bajaj Finance", "BAJAJFINSV": "Bajaj Finserv", "BPCL": "Bharat Petroleum",
	"BHARTIARTL": "Bharti Airtel", "BRITANNIA": "Britannia Industries", "CIPLA": "Cipla",
	"COALINDIA": "Coal India", "DIVISLAB": "Divi's Laboratories", "DRREDDY": "Dr Reddy's Labs",
	"EICHERMOT": "Eicher Motors", "GRASIM": "Grasim Industries", "HCLTECH": "HCL Technologies",
	"HDFCBANK": "HDFC Bank", "HDFCLIFE": "HDFC Life Insurance", "HEROMOTOCO": "Hero MotoCorp",
	"HINDALCO": "Hindalco Industries", "HINDUNILVR": "Hindustan Unilever", "ICICIBANK": "ICICI Bank",
	"ITC": "ITC Limited", "INDUSINDBK": "IndusInd Bank", "INFY": "Infosys", "JSWSTEEL": "JSW Steel",
	"KOTAKBANK": "Kotak Mahindra Bank", "LT": "Larsen & Toubro", "M&M": "Mahindra & Mahindra",
	"MARUTI": "Maruti Suzuki", "NTPC": "NTPC", "NESTLEIND": "Nestle India", "ONGC": "ONGC",
	"POWERGRID": "Power Grid", "RELIANCE": "Reliance Industries", "SBILIFE": "SBI Life Insurance",
	"SBIN": "State Bank of India", "SUNPHARMA": "Sun Pharma", "TCS": "Tata Consultancy Services",
	"TATACONSUM": "Tata Consumer Products", "TATAMOTORS": "Tata Motors", "TATASTEEL": "Tata Steel",
	"TECHM": "Tech Mahindra", "TITAN": "Titan Company", "ULTRACEMCO": "UltraTech Cement",
	"UPL": "UPL Limited", "WIPRO": "Wipro",

	// Banking & Finance
	"ABCAPITAL": "Aditya Birla Capital", "ABFRL": "Aditya Birla Fashion", "AUBANK": "AU Small Finance Bank",
	"BANDHANBNK": "Bandhan Bank", "BANKBARODA": "Bank of Baroda", "CANBK": "Canara Bank",
	"CHOLAFIN": "Cholamandalam Investment", "FEDERALBNK": "Federal Bank", "HDFCAMC": "HDFC AMC",
	"ICICIGI": "ICICI Lombard", "ICICIPRULI": "ICICI Prudential Life", "IDFCFIRSTB": "IDFC First Bank",
	"LICHSGFIN": "LIC Housing Finance", "MUTHOOTFIN": "Muthoot Finance", "PNB": "Punjab National Bank",
	"PFC": "Power Finance Corporation", "REC": "REC Limited", "SBICARD": "SBI Cards",
	"SHRIRAMFIN": "Shriram Finance", "UNIONBANK": "Union Bank", "YESBANK": "Yes Bank",

	// IT & Technology
	"COFORGE": "Coforge", "LTIM": "LTIMindtree", "MPHASIS": "Mphasis", "PERSISTENT": "Persistent Systems",
	"TATAELXSI": "Tata Elxsi", "ZENSARTECH": "Zensar Technologies", "MINDTREE": "Mindtree",

	// Pharma & Healthcare
	"AUROPHARMA": "Aurobindo Pharma", "BIOCON": "Biocon", "CADILAHC": "Cadila Healthcare",
	"GLENMARK": "Glenmark Pharma", "GRANULES": "Granules India", "IPCALAB": "Ipca Laboratories",
	"LAURUSLABS": "Laurus Labs", "LUPIN": "Lupin", "NATCOPHARM": "Natco Pharma",
	"TORNTPHARM": "Torrent Pharma", "ALKEM": "Alkem Laboratories",

	// Auto & Auto Components
	"ASHOKLEY": "Ashok Leyland", "BALKRISIND": "Balkrishna Industries", "BHARATFORG": "Bharat Forge",
	"BOSCHLTD": "Bosch", "ESCORTS": "Escorts", "EXIDEIND": "Exide Industries",
	"MRF": "MRF", "MOTHERSON": "Motherson Sumi", "APOLLOTYRE": "Apollo Tyres",
	"CEAT": "CEAT", "FORCEMOT": "Force Motors", "MAHINDCIE": "Mahindra CIE",
	"TIINDIA": "Tube Investments", "TVSMOTOR": "TVS Motor",

	// FMCG & Consumer
	"COLPAL": "Colgate-Palmolive", "DABUR": "Dabur India", "EMAMILTD": "Emami",
	"GODREJCP": "Godrej Consumer", "MARICO": "Marico", "PGHH": "Procter & Gamble",
	"VBL": "Varun Beverages", "RADICO": "Radico Khaitan",

	// Cement
	"ACC": "ACC", "AMBUJACEM": "Ambuja Cements", "DALMIACEM": "Dalmia Bharat",
	"JKCEMENT": "JK Cement", "RAMCOCEM": "Ramco Cements", "SHREECEM": "Shree Cement",
	"STARCEMENT": "Star Cement",

	// Metals & Mining
	"HINDZINC": "Hindustan Zinc", "JINDALSTEL": "Jindal Steel", "JSWENERGY": "JSW Energy",
	"NATIONALUM": "National Aluminium", "NMDC": "NMDC", "SAIL": "SAIL",
	"VEDL": "Vedanta", "TATAMETALI": "Tata Metaliks",

	// Energy & Power
	"ADANIGREEN": "Adani Green Energy", "ADANIPOWER": "Adani Power", "ADANITRANS": "Adani Transmission",
	"GAIL": "GAIL India", "IOC": "Indian Oil", "TATAPOWER": "Tata Power",
	"TORNTPOWER": "Torrent Power", "NHPC": "NHPC",

	// Telecom
	"IDEA": "Vodafone Idea", "INDIAMART": "IndiaMART",

	// Real Estate
	"DLF": "DLF", "GODREJPROP": "Godrej Properties", "OBEROIRLTY": "Oberoi Realty",
	"PRESTIGE": "Prestige Estates", "BRIGADE": "Brigade Enterprises", "PHOENIXLTD": "Phoenix Mills",

	// Retail
	"DMART": "Avenue Supermarts", "TRENT": "Trent", "SHOPERSTOP": "Shoppers Stop",
	"VMART": "V-Mart Retail", "SPENCERS": "Spencer's Retail",

	// Media & Entertainment
	"ZEEL": "Zee Entertainment", "PVRINOX": "PVR INOX", "SUNTV": "Sun TV",
	"NETWORK18": "Network18", "TVTODAY": "TV Today",

	// Hotels & Tourism
	"INDHOTEL": "Indian Hotels", "LEMONTREE": "Lemon Tree Hotels", "CHALET": "Chalet Hotels",
	"EIH": "EIH Limited",

	// Logistics
	"BLUEDART": "Blue Dart", "CONCOR": "Container Corporation", "VRL": "VRL Logistics",
	"MAHLOG": "Mahindra Logistics", "TCI": "Transport Corporation",

	// Chemicals
	"AARTI": "Aarti Industries", "DEEPAKNTR": "Deepak Nitrite", "GNFC": "Gujarat Narmada",
	"PIDILITIND": "Pidilite Industries", "SRF": "SRF", "TATACHEM": "Tata Chemicals",

	// Textiles
	"ARVIND": "Arvind", "RAYMOND": "Raymond",
	"VARDHACRLC": "Vardhman Textiles", "WELSPUNIND": "Welspun India",

	// Infrastructure
	"GMR": "GMR Infrastructure", "IRB": "IRB Infrastructure",
	"JSWINFRA": "JSW Infrastructure", "NBCC": "NBCC India",

	// Agriculture
	"RALLIS": "Rallis India", "COROMANDEL": "Coromandel International",

	// Defence & Aerospace
	"HAL": "Hindustan Aeronautics", "BEL": "Bharat Electronics", "BHEL": "Bharat Heavy Electricals",
	"BEML": "BEML", "COCHINSHIP": "Cochin Shipyard",

	// Others
	"ADANIGAS": "Adani Total Gas", "IRCTC": "IRCTC", "DIXON": "Dixon Technologies",
	"HAVELLS": "Havells India", "VOLTAS": "Voltas", "WHIRLPOOL": "Whirlpool",
	"CROMPTON": "Crompton Greaves", "POLYCAB": "Polycab India", "KEI": "KEI Industries",
	"VGUARD": "V-Guard Industries", "AMBER": "Amber Enterprises",
}
